package platform

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const configDirName = "hosts"

// FileConfig mirrors config.yaml. Unset fields keep the library defaults.
type FileConfig struct {
	Path        string `yaml:"path"`
	ReadOnly    bool   `yaml:"read_only"`
	AtomicWrite bool   `yaml:"atomic_write"`
	PreserveCR  bool   `yaml:"preserve_cr"`
	BackupDir   string `yaml:"backup_dir"`
	BackupLimit int    `yaml:"backup_limit"`
	DevSafety   *bool  `yaml:"dev_safety"`
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/hosts/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, configDirName, "config.yaml")
}

// DefaultBackupDir returns $XDG_STATE_HOME/hosts/backups.
func DefaultBackupDir() string {
	return filepath.Join(xdg.StateHome, configDirName, "backups")
}

// LoadConfig reads a YAML config file. An empty path selects
// DefaultConfigPath, and a missing default file yields an empty config.
// Unknown keys are rejected.
func LoadConfig(path string) (*FileConfig, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}

	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &FileConfig{}, nil
		}
		return nil, fmt.Errorf("failed to open config %s: %w", path, err)
	}
	defer f.Close()

	cfg := &FileConfig{}
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Options converts the file config into service options.
func (c *FileConfig) Options() []Option {
	opts := []Option{
		WithReadOnly(c.ReadOnly),
		WithAtomicWrite(c.AtomicWrite),
		WithPreserveCR(c.PreserveCR),
	}
	if c.BackupDir != "" {
		opts = append(opts, WithBackupDir(c.BackupDir))
	}
	if c.BackupLimit > 0 {
		opts = append(opts, WithBackupLimit(c.BackupLimit))
	}
	if c.DevSafety != nil {
		opts = append(opts, WithDevSafety(*c.DevSafety))
	}
	return opts
}
