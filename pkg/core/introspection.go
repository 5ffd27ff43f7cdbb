package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Path           string `json:"path"`
	RepositoryType string `json:"repository_type"`
	Saves          int    `json:"saves"`
	SkippedWrites  int    `json:"skipped_writes"`
	LastOperation  string `json:"last_operation,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	repoType := "unknown"
	path := ""
	if s.repo != nil {
		repoType = "repository"
		if comp, ok := s.repo.(introspection.Component); ok {
			repoType = comp.ComponentType()
		}
		path = s.repo.Path()
	}

	return ServiceState{
		Path:           path,
		RepositoryType: repoType,
		Saves:          s.saves,
		SkippedWrites:  s.skips,
		LastOperation:  s.lastOp,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
