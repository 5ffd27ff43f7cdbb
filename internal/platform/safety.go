package platform

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// SandboxDirName is the directory under os.TempDir() that receives the
// hosts copy while running in dev mode.
const SandboxDirName = "hosts-dev"

// IsDevRun checks if the current process is running via "go run" or "go test".
func IsDevRun() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}

	// "go run" builds into the temp dir.
	tempDir := os.TempDir()
	if strings.HasPrefix(strings.ToLower(exe), strings.ToLower(tempDir)) {
		return true
	}

	// "go test" binaries carry a .test suffix.
	if strings.HasSuffix(exe, ".test") || strings.HasSuffix(exe, ".test.exe") {
		return true
	}

	return false
}

// SandboxPath copies src into dir and returns the path of the copy.
// An empty dir selects os.TempDir()/hosts-dev. An existing copy is reused
// so edits survive between dev runs.
func SandboxPath(src, dir string) (string, error) {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), SandboxDirName)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create sandbox dir: %w", err)
	}

	dst := filepath.Join(dir, "hosts")
	if _, err := os.Stat(dst); err == nil {
		return dst, nil
	}

	if err := copyInto(src, dst); err != nil {
		return "", fmt.Errorf("failed to sandbox %s: %w", src, err)
	}
	return dst, nil
}

func copyInto(src, dst string) error {
	in, err := os.Open(src)
	if errors.Is(err, fs.ErrNotExist) {
		return os.WriteFile(dst, nil, 0644)
	}
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
