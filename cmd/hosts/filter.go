package main

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/aretw0/hosts"
)

// hostnameFilter decides once, from flags, how a hostname argument matches.
// No argument, or an empty one, means every hostname.
func hostnameFilter(args []string, regex, glob bool) (hosts.Filter, error) {
	if regex && glob {
		return nil, errors.New("--regex and --glob are mutually exclusive")
	}
	if len(args) == 0 || args[0] == "" {
		if regex || glob {
			return nil, errors.New("a hostname pattern is required with --regex or --glob")
		}
		return nil, nil
	}

	pattern := args[0]
	switch {
	case regex:
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid regular expression %q: %w", pattern, err)
		}
		return hosts.Pattern(re), nil
	case glob:
		return hosts.Glob(pattern)
	default:
		return hosts.Exact(pattern), nil
	}
}
