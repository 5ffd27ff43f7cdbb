// Package core holds the hosts file domain: the line records a hosts file is
// made of, the add/remove/lookup rules applied to them and the Service that
// runs one load-modify-save cycle per call.
package core

import "fmt"

// Kind discriminates the three variants a Line can take.
type Kind int

const (
	KindBlank Kind = iota
	KindComment
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindComment:
		return "comment"
	case KindMapping:
		return "mapping"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Line is one line of a hosts file.
// Exactly one variant is populated, selected by Kind:
//   - KindMapping uses IP and Hostname.
//   - KindComment and KindBlank use Raw, the original untrimmed text.
type Line struct {
	Kind     Kind
	IP       string
	Hostname string
	Raw      string
}

// NewMapping builds a mapping line.
func NewMapping(ip, hostname string) Line {
	return Line{Kind: KindMapping, IP: ip, Hostname: hostname}
}

// NewComment builds a comment line from its original text, leading '#' included.
func NewComment(raw string) Line {
	return Line{Kind: KindComment, Raw: raw}
}

// NewBlank builds an empty or whitespace-only line.
func NewBlank(raw string) Line {
	return Line{Kind: KindBlank, Raw: raw}
}

func (l Line) IsMapping() bool { return l.Kind == KindMapping }
func (l Line) IsComment() bool { return l.Kind == KindComment }
func (l Line) IsBlank() bool   { return l.Kind == KindBlank }

// Mapping returns the IP/hostname pair of a mapping line.
// The second result is false for comments and blanks.
func (l Line) Mapping() (Mapping, bool) {
	if l.Kind != KindMapping {
		return Mapping{}, false
	}
	return Mapping{IP: l.IP, Hostname: l.Hostname}, true
}

// Mapping is an IP-to-hostname association as returned by lookups.
type Mapping struct {
	IP       string `json:"ip" yaml:"ip"`
	Hostname string `json:"hostname" yaml:"hostname"`
}

func (m Mapping) String() string {
	return m.IP + " " + m.Hostname
}

// EventType represents the type of change observed on the hosts file.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents an external change to the hosts file.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

// String implements lifecycle.Event.
func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Path)
}
