package core

import (
	"fmt"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter selects mapping lines by hostname.
// The zero value (nil) behaves like NoFilter.
type Filter interface {
	Match(hostname string) bool
	String() string
}

type noFilter struct{}

func (noFilter) Match(string) bool { return true }
func (noFilter) String() string    { return "*" }

// NoFilter matches every hostname.
func NoFilter() Filter { return noFilter{} }

type exactFilter string

func (f exactFilter) Match(hostname string) bool { return hostname == string(f) }
func (f exactFilter) String() string             { return string(f) }

// Exact matches a hostname equal to s.
// Exact("") only matches empty hostnames; pass a nil Filter to match all.
func Exact(s string) Filter { return exactFilter(s) }

type patternFilter struct {
	re *regexp.Regexp
}

func (f patternFilter) Match(hostname string) bool { return f.re.MatchString(hostname) }
func (f patternFilter) String() string             { return "/" + f.re.String() + "/" }

// Pattern matches hostnames against a regular expression.
// A nil expression matches everything.
func Pattern(re *regexp.Regexp) Filter {
	if re == nil {
		return noFilter{}
	}
	return patternFilter{re: re}
}

type globFilter string

func (f globFilter) Match(hostname string) bool {
	ok, _ := doublestar.Match(string(f), hostname)
	return ok
}
func (f globFilter) String() string { return string(f) }

// Glob matches hostnames against a shell pattern such as "*.local".
func Glob(pattern string) (Filter, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: bad glob pattern %q", ErrInvalidArgument, pattern)
	}
	return globFilter(pattern), nil
}

func matches(f Filter, hostname string) bool {
	if f == nil {
		return true
	}
	return f.Match(hostname)
}
