// Package lifecycle exposes hosts file change events as a lifecycle.Source,
// so applications built on github.com/aretw0/lifecycle can react to edits
// (reload a resolver, restart a proxy) next to their other event sources.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/hosts/pkg/core"
)

type hostsSource struct {
	events <-chan core.Event
	types  map[core.EventType]bool
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits hosts file events.
// When types is non-empty only those event types are forwarded.
func NewSource(events <-chan core.Event, types ...core.EventType) lifecycle.Source {
	var allowed map[core.EventType]bool
	if len(types) > 0 {
		allowed = make(map[core.EventType]bool, len(types))
		for _, t := range types {
			allowed[t] = true
		}
	}
	return &hostsSource{
		events: events,
		types:  allowed,
		out:    make(chan lifecycle.Event),
	}
}

func (s *hostsSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *hostsSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				if s.types != nil && !s.types[e.Type] {
					continue
				}
				// core.Event implements lifecycle.Event (has String())
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
