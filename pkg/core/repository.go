package core

import "context"

// Repository defines the contract for reading and writing a hosts file.
// Adhering to this interface keeps the add/remove/lookup rules independent of
// where the lines are stored.
type Repository interface {
	// Load reads and parses the whole target into lines.
	Load(ctx context.Context) ([]Line, error)

	// Save replaces the whole target with the serialized lines.
	Save(ctx context.Context, lines []Line) error

	// Path returns the active target.
	Path() string

	// SetPath switches the active target. The path is used as given.
	SetPath(path string)
}

// Watchable defines an interface for repositories that can report external changes.
type Watchable interface {
	// Watch emits an Event each time the target changes on disk.
	// The channel is closed when ctx is done.
	Watch(ctx context.Context) (<-chan Event, error)
}

// PathResolver turns a user supplied path into the absolute path to operate on.
type PathResolver func(path string) (string, error)
