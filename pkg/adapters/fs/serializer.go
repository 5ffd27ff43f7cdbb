package fs

import (
	"io"
	"strings"

	"github.com/aretw0/hosts/pkg/core"
)

// Serializer defines how to read and write a hosts file.
type Serializer interface {
	// Parse reads from r and returns its lines in order.
	Parse(r io.Reader) ([]core.Line, error)
	// Serialize converts lines back into file content.
	Serialize(lines []core.Line) ([]byte, error)
}

// HostsSerializer handles the plain "ip hostname" line format.
type HostsSerializer struct {
	// PreserveCR keeps a trailing carriage return as part of each line.
	// By default it is stripped so CRLF files classify like LF files.
	PreserveCR bool
}

// NewHostsSerializer creates a new hosts file serializer.
func NewHostsSerializer(preserveCR bool) *HostsSerializer {
	return &HostsSerializer{PreserveCR: preserveCR}
}

// Parse never fails on content. A trailing line feed yields a final blank line.
func (s *HostsSerializer) Parse(r io.Reader) ([]core.Line, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	raw := strings.Split(string(data), "\n")
	lines := make([]core.Line, 0, len(raw))
	for _, text := range raw {
		if !s.PreserveCR {
			text = strings.TrimSuffix(text, "\r")
		}
		lines = append(lines, parseLine(text))
	}
	return lines, nil
}

func parseLine(text string) core.Line {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return core.NewBlank(text)
	}
	if trimmed[0] == '#' {
		return core.NewComment(text)
	}

	ip, hostname, found := strings.Cut(text, " ")
	if !found {
		return core.NewMapping(text, "")
	}
	return core.NewMapping(ip, strings.TrimSpace(hostname))
}

// Serialize joins lines with "\n" and adds no trailing line feed.
func (s *HostsSerializer) Serialize(lines []core.Line) ([]byte, error) {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = formatLine(l)
	}
	return []byte(strings.Join(out, "\n")), nil
}

func formatLine(l core.Line) string {
	switch l.Kind {
	case core.KindComment:
		return formatComment(l.Raw)
	case core.KindMapping:
		return strings.TrimSpace(l.IP + " " + l.Hostname)
	default:
		return ""
	}
}

// formatComment leaves exactly one space between the leading run of '#' and
// the comment text.
func formatComment(raw string) string {
	text := strings.TrimSpace(raw)
	body := strings.TrimLeft(text, "#")
	hashes := text[:len(text)-len(body)]
	if hashes == "" {
		hashes = "#"
	}
	return strings.TrimSpace(hashes + " " + strings.TrimSpace(body))
}
