package hosts

import (
	"log/slog"
	"os"
	"regexp"

	"github.com/aretw0/hosts/internal/platform"
	"github.com/aretw0/hosts/pkg/core"
)

// --- Types ---

type (
	// Service edits one hosts file.
	Service = core.Service
	// Tx is the in-memory view handed to Service.Batch.
	Tx = core.Tx
	// Line is one parsed line of a hosts file.
	Line = core.Line
	// Mapping is an ip to hostname association.
	Mapping = core.Mapping
	// Filter selects hostnames for Get and Remove.
	Filter = core.Filter
	// Event is a change notification from Watch.
	Event = core.Event
	// Repository is the storage port behind a Service.
	Repository = core.Repository
)

// Sentinel errors.
var (
	ErrInvalidArgument = core.ErrInvalidArgument
	ErrReadOnly        = core.ErrReadOnly
	ErrNotWatchable    = core.ErrNotWatchable
)

// --- Filters ---

// NoFilter matches every hostname.
func NoFilter() Filter { return core.NoFilter() }

// Exact matches one hostname literally.
func Exact(hostname string) Filter { return core.Exact(hostname) }

// Pattern matches hostnames against a regular expression.
func Pattern(re *regexp.Regexp) Filter { return core.Pattern(re) }

// Glob matches hostnames against a shell glob such as "*.dev.local".
func Glob(pattern string) (Filter, error) { return core.Glob(pattern) }

// --- Configuration ---

// Option defines a functional option for configuring the service.
type Option = platform.Option

// Config mirrors the YAML config file.
type Config = platform.FileConfig

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithResolver replaces the path resolver.
func WithResolver(resolve core.PathResolver) Option {
	return platform.WithResolver(resolve)
}

// WithReadOnly rejects every write with ErrReadOnly.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithAtomicWrite saves through a temp file and rename.
func WithAtomicWrite(enabled bool) Option {
	return platform.WithAtomicWrite(enabled)
}

// WithPreserveCR keeps trailing carriage returns on parsed lines.
func WithPreserveCR(enabled bool) Option {
	return platform.WithPreserveCR(enabled)
}

// WithFileMode sets the permissions of a newly created hosts file.
func WithFileMode(mode os.FileMode) Option {
	return platform.WithFileMode(mode)
}

// WithBackupDir enables a backup copy before every save.
func WithBackupDir(dir string) Option {
	return platform.WithBackupDir(dir)
}

// WithBackupLimit caps the number of kept backups.
func WithBackupLimit(n int) Option {
	return platform.WithBackupLimit(n)
}

// WithEventBuffer sets the size of the Watch channel.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithWatcherErrorHandler receives errors raised while watching.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// WithDevSafety controls the go run / go test sandbox.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// LoadConfig reads a YAML config file. An empty path looks in
// $XDG_CONFIG_HOME/hosts/config.yaml.
func LoadConfig(path string) (*Config, error) {
	return platform.LoadConfig(path)
}

// --- Factory ---

// New creates a Service for the hosts file at path.
// An empty path selects DefaultPath.
func New(path string, opts ...Option) (*Service, error) {
	return platform.New(path, opts...)
}

// Init builds the repository without a Service on top.
func Init(path string, opts ...Option) (Repository, error) {
	return platform.Init(path, opts...)
}

// --- Paths & Safety ---

// DefaultPath returns the system hosts file for the running OS.
func DefaultPath() string {
	return platform.DefaultPath()
}

// ResolvePath expands "~" and environment variables and makes path absolute.
func ResolvePath(path string) (string, error) {
	return platform.ResolvePath(path)
}

// DefaultBackupDir returns $XDG_STATE_HOME/hosts/backups.
func DefaultBackupDir() string {
	return platform.DefaultBackupDir()
}

// IsDevRun checks if the current process is running via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}
