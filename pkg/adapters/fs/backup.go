package fs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/aretw0/hosts/pkg/core"
)

const (
	// BackupPrefix names every backup file, followed by a sortable timestamp.
	BackupPrefix = "hosts.bak."

	backupTimeFormat = "20060102-150405.000000000"
)

// BackupInfo describes one backup copy.
type BackupInfo struct {
	Name     string    `json:"name" yaml:"name"`
	Path     string    `json:"path" yaml:"path"`
	Size     int64     `json:"size" yaml:"size"`
	Modified time.Time `json:"modified" yaml:"modified"`
}

// Backup copies the current hosts file into the backup directory.
func (r *Repository) Backup() (string, error) {
	if r.config.BackupDir == "" {
		return "", errors.New("no backup directory configured")
	}
	return r.backup(r.Path())
}

// backup returns "" without error when there is nothing to copy yet.
func (r *Repository) backup(path string) (string, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return "", nil
	}

	if err := os.MkdirAll(r.config.BackupDir, 0755); err != nil {
		return "", err
	}

	name := BackupPrefix + time.Now().Format(backupTimeFormat)
	dst := filepath.Join(r.config.BackupDir, name)
	if err := copyFile(path, dst); err != nil {
		return "", err
	}
	r.debug("hosts file backed up", "path", path, "backup", dst)

	if r.config.BackupLimit > 0 {
		if err := r.pruneBackups(r.config.BackupLimit); err != nil && r.config.Logger != nil {
			r.config.Logger.Warn("failed to prune backups", "dir", r.config.BackupDir, "error", err)
		}
	}
	return dst, nil
}

// ListBackups returns the backups, newest first.
// A missing backup directory yields an empty list.
func (r *Repository) ListBackups() ([]BackupInfo, error) {
	backups := []BackupInfo{}
	if r.config.BackupDir == "" {
		return backups, nil
	}

	entries, err := os.ReadDir(r.config.BackupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return backups, nil
		}
		return nil, err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), BackupPrefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, BackupInfo{
			Name:     entry.Name(),
			Path:     filepath.Join(r.config.BackupDir, entry.Name()),
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
	}

	// Names embed the timestamp, so name order is time order.
	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Name > backups[j].Name
	})
	return backups, nil
}

// Restore overwrites the hosts file with a backup.
// name is either a backup file name as listed by ListBackups or an absolute path.
func (r *Repository) Restore(name string) error {
	if r.config.ReadOnly {
		return core.ErrReadOnly
	}

	src := name
	if !filepath.IsAbs(name) {
		if r.config.BackupDir == "" {
			return errors.New("no backup directory configured")
		}
		if strings.ContainsAny(name, `/\`) || !strings.HasPrefix(name, BackupPrefix) {
			return fmt.Errorf("%w: %q is not a backup name", core.ErrInvalidArgument, name)
		}
		src = filepath.Join(r.config.BackupDir, name)
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read backup %s: %w", src, err)
	}

	path := r.Path()
	write := writeFileInPlace
	if r.config.AtomicWrite {
		write = writeFileAtomic
	}
	if err := write(path, data, fileMode(path, r.config.FileMode)); err != nil {
		return err
	}
	r.recordWrite()
	return nil
}

func (r *Repository) pruneBackups(limit int) error {
	backups, err := r.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) <= limit {
		return nil
	}

	var errs []error
	for _, b := range backups[limit:] {
		if err := os.Remove(b.Path); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func copyFile(src, dst string) error {
	s, err := os.Open(src)
	if err != nil {
		return err
	}
	defer s.Close()

	d, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(d, s); err != nil {
		d.Close()
		return err
	}
	return d.Close()
}
