package core

import "fmt"

func validateIP(ip string) error {
	if ip == "" {
		return fmt.Errorf("%w: missing ip: must be a non-empty string", ErrInvalidArgument)
	}
	return nil
}

func validateHostname(hostname string) error {
	if hostname == "" {
		return fmt.Errorf("%w: missing hostname: must be a non-empty string", ErrInvalidArgument)
	}
	return nil
}

// AddMapping appends ip/hostname unless an identical mapping already exists.
// The second result reports whether lines changed.
func AddMapping(lines []Line, ip, hostname string) ([]Line, bool) {
	for _, l := range lines {
		if l.Kind == KindMapping && l.IP == ip && l.Hostname == hostname {
			return lines, false
		}
	}
	return append(lines, NewMapping(ip, hostname)), true
}

// RemoveMappings returns a new slice without the mappings for ip whose
// hostname satisfies f. Comments, blanks and other mappings keep their order.
func RemoveMappings(lines []Line, ip string, f Filter) ([]Line, int) {
	kept := make([]Line, 0, len(lines))
	removed := 0
	for _, l := range lines {
		if l.Kind == KindMapping && l.IP == ip && matches(f, l.Hostname) {
			removed++
			continue
		}
		kept = append(kept, l)
	}
	return kept, removed
}

// SelectMappings returns the mappings for ip whose hostname satisfies f.
func SelectMappings(lines []Line, ip string, f Filter) []Mapping {
	out := []Mapping{}
	for _, l := range lines {
		if l.Kind == KindMapping && l.IP == ip && matches(f, l.Hostname) {
			out = append(out, Mapping{IP: l.IP, Hostname: l.Hostname})
		}
	}
	return out
}

// MappingIPs lists the IP of every mapping line in file order, duplicates included.
func MappingIPs(lines []Line) []string {
	out := []string{}
	for _, l := range lines {
		if l.Kind == KindMapping {
			out = append(out, l.IP)
		}
	}
	return out
}
