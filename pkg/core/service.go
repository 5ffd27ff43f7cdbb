package core

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Service handles the hosts file operations.
// Every call loads the file afresh; nothing is cached between calls.
type Service struct {
	repo    Repository
	resolve PathResolver
	logger  *slog.Logger

	mu     sync.RWMutex
	saves  int
	skips  int
	lastOp string
}

// NewService creates a new Service.
// resolve may be nil, in which case SetPath stores paths unchanged.
func NewService(repo Repository, resolve PathResolver, logger *slog.Logger) *Service {
	return &Service{repo: repo, resolve: resolve, logger: logger}
}

// SetPath resolves path and makes it the active hosts file.
func (s *Service) SetPath(path string) error {
	resolved := path
	if s.resolve != nil {
		var err error
		resolved, err = s.resolve(path)
		if err != nil {
			return fmt.Errorf("failed to resolve path %q: %w", path, err)
		}
	}
	s.repo.SetPath(resolved)
	return nil
}

// Path returns the active hosts file.
func (s *Service) Path() string {
	return s.repo.Path()
}

// Add appends ip/hostname to the hosts file.
// An identical mapping already present makes Add a no-op without a write.
func (s *Service) Add(ctx context.Context, ip, hostname string) error {
	if err := validateIP(ip); err != nil {
		return err
	}
	if err := validateHostname(hostname); err != nil {
		return err
	}

	lines, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	lines, changed := AddMapping(lines, ip, hostname)
	if !changed {
		s.debug("mapping already present", "ip", ip, "hostname", hostname)
		s.record("add", false)
		return nil
	}
	if err := s.repo.Save(ctx, lines); err != nil {
		return err
	}
	s.record("add", true)
	return nil
}

// Remove deletes the mappings for ip whose hostname satisfies f.
// A nil f removes every mapping for ip. The file is written even when
// nothing matched.
func (s *Service) Remove(ctx context.Context, ip string, f Filter) error {
	if err := validateIP(ip); err != nil {
		return err
	}

	lines, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	lines, removed := RemoveMappings(lines, ip, f)
	s.debug("removing mappings", "ip", ip, "filter", filterName(f), "removed", removed)
	if err := s.repo.Save(ctx, lines); err != nil {
		return err
	}
	s.record("remove", true)
	return nil
}

// Get returns the mappings for ip whose hostname satisfies f.
// The result is empty, never nil, when nothing matches.
// An empty ip is not a wildcard: it only matches malformed lines with an
// empty ip. Use IPs to list every mapped ip.
func (s *Service) Get(ctx context.Context, ip string, f Filter) ([]Mapping, error) {
	lines, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	s.record("get", false)
	return SelectMappings(lines, ip, f), nil
}

// IPs returns the IP of every mapping in file order, duplicates included.
func (s *Service) IPs(ctx context.Context) ([]string, error) {
	lines, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	s.record("ips", false)
	return MappingIPs(lines), nil
}

// Lines returns every parsed line, comments and blanks included.
func (s *Service) Lines(ctx context.Context) ([]Line, error) {
	lines, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	s.record("lines", false)
	return lines, nil
}

// Batch runs fn against a single load of the hosts file and saves once if fn
// succeeded and changed anything. Nothing is written when fn fails.
func (s *Service) Batch(ctx context.Context, fn func(tx *Tx) error) error {
	lines, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	tx := &Tx{lines: lines}
	if err := fn(tx); err != nil {
		s.debug("batch discarded", "error", err)
		return err
	}
	if !tx.dirty {
		s.record("batch", false)
		return nil
	}
	if err := s.repo.Save(ctx, tx.lines); err != nil {
		return err
	}
	s.record("batch", true)
	return nil
}

// Watch observes changes to the hosts file if the repository supports it.
func (s *Service) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, ErrNotWatchable
	}
	return w.Watch(ctx)
}

func (s *Service) record(op string, saved bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastOp = op
	if saved {
		s.saves++
	} else if op == "add" || op == "batch" {
		s.skips++
	}
}

func (s *Service) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

func filterName(f Filter) string {
	if f == nil {
		return NoFilter().String()
	}
	return f.String()
}
