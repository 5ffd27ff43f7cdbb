package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
)

// defaultPath is the system hosts file. Windows overrides it at init.
var defaultPath = "/etc/hosts"

// DefaultPath returns the system hosts file for the current OS.
func DefaultPath() string {
	return defaultPath
}

// ResolvePath turns a user supplied path into an absolute one.
// It expands a leading "~" to the home directory and $VARS from the
// environment. An empty path selects DefaultPath.
func ResolvePath(path string) (string, error) {
	if path == "" {
		return DefaultPath(), nil
	}

	path = expandHome(os.ExpandEnv(path))
	return filepath.Abs(path)
}

func expandHome(path string) string {
	if path == "~" {
		return xdg.Home
	}
	if strings.HasPrefix(path, "~/") || (runtime.GOOS == "windows" && strings.HasPrefix(path, `~\`)) {
		return filepath.Join(xdg.Home, path[2:])
	}
	return path
}

// IsSystemPath reports whether path points at the system hosts file.
func IsSystemPath(path string) bool {
	a, b := filepath.Clean(path), filepath.Clean(DefaultPath())
	if runtime.GOOS == "windows" {
		return strings.EqualFold(a, b)
	}
	return a == b
}
