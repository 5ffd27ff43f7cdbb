package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/aretw0/hosts/pkg/core"
)

// DefaultFileMode is used when the target does not exist yet.
const DefaultFileMode os.FileMode = 0644

// Repository implements core.Repository on a single hosts file.
type Repository struct {
	mu         sync.RWMutex
	path       string
	serializer Serializer
	config     Config

	watcherActive bool
	lastWrite     *time.Time
	writes        int
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path        string
	Logger      *slog.Logger
	ReadOnly    bool
	AtomicWrite bool        // temp file + rename instead of truncating in place
	PreserveCR  bool        // keep '\r' at the end of parsed lines
	FileMode    os.FileMode // permissions when the file is created; existing files keep theirs
	BackupDir   string      // if set, the current file is copied here before every save
	BackupLimit int         // keep at most this many backups, 0 means unlimited
	EventBuffer int         // Watch channel capacity, 0 means default (16)

	// ErrorHandler receives watcher failures that would otherwise only be logged.
	ErrorHandler func(error)
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	if config.FileMode == 0 {
		config.FileMode = DefaultFileMode
	}
	return &Repository{
		path:       config.Path,
		serializer: NewHostsSerializer(config.PreserveCR),
		config:     config,
	}
}

// SetSerializer replaces the line format used by Load and Save.
func (r *Repository) SetSerializer(s Serializer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.serializer = s
}

// Path returns the active hosts file.
func (r *Repository) Path() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.path
}

// SetPath switches the active hosts file.
func (r *Repository) SetPath(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.path = path
}

// Load reads and parses the hosts file.
func (r *Repository) Load(ctx context.Context) ([]core.Line, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	path, serializer := r.path, r.serializer
	r.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read hosts file %s: %w", path, err)
	}
	defer f.Close()

	lines, err := serializer.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse hosts file %s: %w", path, err)
	}

	r.debug("hosts file loaded", "path", path, "lines", len(lines))
	return lines, nil
}

// Save serializes lines and overwrites the hosts file.
//
// Workflow:
//  1. Refuse in read-only mode.
//  2. Serialize before touching the disk.
//  3. (If a backup dir is set) copy the current file aside and prune old copies.
//  4. Write in place, or via temp file + rename when AtomicWrite is set.
func (r *Repository) Save(ctx context.Context, lines []core.Line) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.config.ReadOnly {
		return core.ErrReadOnly
	}

	r.mu.RLock()
	path, serializer := r.path, r.serializer
	r.mu.RUnlock()

	data, err := serializer.Serialize(lines)
	if err != nil {
		return fmt.Errorf("failed to serialize hosts file: %w", err)
	}

	if r.config.BackupDir != "" {
		if _, err := r.backup(path); err != nil {
			return fmt.Errorf("backup failed: %w", err)
		}
	}

	perm := fileMode(path, r.config.FileMode)
	write := writeFileInPlace
	if r.config.AtomicWrite {
		write = writeFileAtomic
	}
	if err := write(path, data, perm); err != nil {
		return err
	}

	r.recordWrite()
	r.debug("hosts file saved", "path", path, "lines", len(lines), "atomic", r.config.AtomicWrite)
	return nil
}

func (r *Repository) recordWrite() {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	r.lastWrite = &now
	r.writes++
}

// wroteRecently reports whether this repository itself saved within d.
// The watcher uses it to drop events caused by our own writes.
func (r *Repository) wroteRecently(d time.Duration) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastWrite != nil && time.Since(*r.lastWrite) < d
}

func (r *Repository) debug(msg string, args ...any) {
	if r.config.Logger != nil {
		r.config.Logger.Debug(msg, args...)
	}
}

var _ core.Repository = (*Repository)(nil)
var _ core.Watchable = (*Repository)(nil)
