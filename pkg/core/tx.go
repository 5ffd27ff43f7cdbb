package core

// Tx is the in-memory view of one Batch.
// It applies the same rules as Service without touching the file; Batch
// saves the result once fn returns.
type Tx struct {
	lines []Line
	dirty bool
}

// Add appends ip/hostname unless an identical mapping exists.
func (t *Tx) Add(ip, hostname string) error {
	if err := validateIP(ip); err != nil {
		return err
	}
	if err := validateHostname(hostname); err != nil {
		return err
	}
	var changed bool
	t.lines, changed = AddMapping(t.lines, ip, hostname)
	t.dirty = t.dirty || changed
	return nil
}

// Remove drops the mappings for ip whose hostname satisfies f.
// Like Service.Remove it always leads to a save, matches or not.
func (t *Tx) Remove(ip string, f Filter) error {
	if err := validateIP(ip); err != nil {
		return err
	}
	t.lines, _ = RemoveMappings(t.lines, ip, f)
	t.dirty = true
	return nil
}

// Get returns the staged mappings for ip whose hostname satisfies f.
func (t *Tx) Get(ip string, f Filter) []Mapping {
	return SelectMappings(t.lines, ip, f)
}

// IPs returns the staged mapping IPs in order.
func (t *Tx) IPs() []string {
	return MappingIPs(t.lines)
}

// Lines returns a copy of the staged lines.
func (t *Tx) Lines() []Line {
	out := make([]Line, len(t.lines))
	copy(out, t.lines)
	return out
}
