package platform

import (
	"fmt"
	"os"

	"github.com/aretw0/hosts/pkg/adapters/fs"
	"github.com/aretw0/hosts/pkg/core"
)

// initRepository returns the injected repository, or a filesystem repository
// on the resolved (and possibly sandboxed) path.
func initRepository(path string, o *options) (core.Repository, error) {
	if o.repository != nil {
		if path != "" {
			resolved, err := o.safeResolver()(path)
			if err != nil {
				return nil, err
			}
			o.repository.SetPath(resolved)
		}
		return o.repository, nil
	}

	resolved, err := o.safeResolver()(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve hosts path %q: %w", path, err)
	}

	readOnly, _ := o.config["read_only"].(bool)
	atomicWrite, _ := o.config["atomic_write"].(bool)
	preserveCR, _ := o.config["preserve_cr"].(bool)
	fileMode, _ := o.config["file_mode"].(os.FileMode)
	backupLimit, _ := o.config["backup_limit"].(int)
	eventBuffer, _ := o.config["event_buffer"].(int)
	errorHandler, _ := o.config["watcher_error_handler"].(func(error))

	backupDir, _ := o.config["backup_dir"].(string)
	if backupDir != "" {
		if backupDir, err = ResolvePath(backupDir); err != nil {
			return nil, fmt.Errorf("failed to resolve backup dir: %w", err)
		}
	}

	if o.logger != nil {
		o.logger.Debug("opening hosts file", "path", resolved, "read_only", readOnly, "atomic", atomicWrite)
	}

	return fs.NewRepository(fs.Config{
		Path:         resolved,
		Logger:       o.logger,
		ReadOnly:     readOnly,
		AtomicWrite:  atomicWrite,
		PreserveCR:   preserveCR,
		FileMode:     fileMode,
		BackupDir:    backupDir,
		BackupLimit:  backupLimit,
		EventBuffer:  eventBuffer,
		ErrorHandler: errorHandler,
	}), nil
}

// safeResolver wraps the configured resolver with the dev sandbox, so
// Service.SetPath gets the same protection as New.
func (o *options) safeResolver() core.PathResolver {
	readOnly, _ := o.config["read_only"].(bool)
	devSafety := true
	if val, ok := o.config["dev_safety"].(bool); ok {
		devSafety = val
	}

	// Bypass Safety if:
	// 1. ReadOnly is active (inherently safe)
	// 2. User explicitly disabled DevSafety
	bypassSafety := readOnly || !devSafety

	return func(path string) (string, error) {
		resolved, err := o.resolver(path)
		if err != nil {
			return "", err
		}
		if bypassSafety || !IsDevRun() || !IsSystemPath(resolved) {
			return resolved, nil
		}

		sandboxed, err := SandboxPath(resolved, "")
		if err != nil {
			return "", err
		}
		if o.logger != nil {
			o.logger.Warn("running in SAFE MODE (Dev/Test)", "original_path", resolved, "resolved_path", sandboxed)
		}
		return sandboxed, nil
	}
}
