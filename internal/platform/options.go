package platform

import (
	"log/slog"
	"os"

	"github.com/aretw0/hosts/pkg/core"
)

// options holds the internal configuration for the hosts service.
type options struct {
	repository core.Repository
	logger     *slog.Logger
	resolver   core.PathResolver
	config     map[string]interface{}
}

// Option defines a functional option for configuring the hosts service.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		repository: nil,
		logger:     nil,
		resolver:   ResolvePath,
		config:     make(map[string]interface{}),
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. a mock).
// If provided, the default filesystem adapter will be skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithResolver replaces the path resolver used by New and Service.SetPath.
func WithResolver(resolve core.PathResolver) Option {
	return func(o *options) {
		if resolve != nil {
			o.resolver = resolve
		}
	}
}

// WithReadOnly enables read-only mode.
// In this mode:
// 1. Add, Remove and Restore return ErrReadOnly instead of writing.
// 2. Dev Safety (go run/go test sandbox) is BYPASSED, reads hit the real file.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.config["read_only"] = enabled
	}
}

// WithAtomicWrite writes through a temp file and rename instead of truncating in place.
// Leave it off for bind-mounted hosts files (containers), where rename fails.
func WithAtomicWrite(enabled bool) Option {
	return func(o *options) {
		o.config["atomic_write"] = enabled
	}
}

// WithPreserveCR keeps a trailing '\r' in parsed lines instead of stripping it.
func WithPreserveCR(enabled bool) Option {
	return func(o *options) {
		o.config["preserve_cr"] = enabled
	}
}

// WithFileMode sets the permissions used when the hosts file does not exist yet.
func WithFileMode(mode os.FileMode) Option {
	return func(o *options) {
		o.config["file_mode"] = mode
	}
}

// WithBackupDir copies the hosts file into dir before every save.
func WithBackupDir(dir string) Option {
	return func(o *options) {
		o.config["backup_dir"] = dir
	}
}

// WithBackupLimit keeps at most n backups. Zero means unlimited.
func WithBackupLimit(n int) Option {
	return func(o *options) {
		o.config["backup_limit"] = n
	}
}

// WithEventBuffer allows specifying the size of the Watch channel.
// Zero means default (16).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.config["event_buffer"] = size
	}
}

// WithWatcherErrorHandler registers a callback for errors raised while watching.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.config["watcher_error_handler"] = fn
	}
}

// WithDevSafety controls the sandbox used when running via `go run` or `go test`.
// By default (true), targeting the system hosts file from such a binary
// redirects to a copy under the temp directory.
//
// CAUTION: Only disable this if you are sure your code is safe.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.config["dev_safety"] = enabled
	}
}
