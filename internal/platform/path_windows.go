//go:build windows

package platform

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/windows"
)

func init() {
	defaultPath = filepath.Join(systemDirectory(), "drivers", "etc", "hosts")
}

func systemDirectory() string {
	if dir, err := windows.GetSystemDirectory(); err == nil {
		return dir
	}
	root := os.Getenv("SystemRoot")
	if root == "" {
		root = `C:\Windows`
	}
	return filepath.Join(root, "System32")
}
