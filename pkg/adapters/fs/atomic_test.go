package fs

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Run("Creates New File", func(t *testing.T) {
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "hosts")
		content := []byte("127.0.0.1 localhost")

		if err := writeFileAtomic(filename, content, 0644); err != nil {
			t.Fatalf("writeFileAtomic failed: %v", err)
		}

		got, err := os.ReadFile(filename)
		if err != nil {
			t.Fatalf("Failed to read file: %v", err)
		}
		if string(got) != string(content) {
			t.Errorf("Expected content %q, got %q", content, got)
		}
	})

	t.Run("Overwrites Existing File", func(t *testing.T) {
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "hosts")

		if err := os.WriteFile(filename, []byte("initial"), 0644); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}

		newContent := []byte("10.0.0.1 overwritten")
		if err := writeFileAtomic(filename, newContent, 0644); err != nil {
			t.Fatalf("writeFileAtomic failed: %v", err)
		}

		got, err := os.ReadFile(filename)
		if err != nil {
			t.Fatalf("Failed to read file: %v", err)
		}
		if string(got) != string(newContent) {
			t.Errorf("Expected content %q, got %q", newContent, got)
		}
	})

	t.Run("Leaves No Temp Files", func(t *testing.T) {
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "hosts")

		if err := writeFileAtomic(filename, []byte("x"), 0644); err != nil {
			t.Fatalf("writeFileAtomic failed: %v", err)
		}

		matches, _ := filepath.Glob(filepath.Join(tmpDir, TempFilePrefix+"*"))
		if len(matches) != 0 {
			t.Errorf("Expected no temp files, found %v", matches)
		}
	})

	t.Run("Fails if Directory Missing", func(t *testing.T) {
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "missing_folder", "hosts")

		if err := writeFileAtomic(filename, []byte("fail"), 0644); err == nil {
			t.Error("Expected error when directory is missing, got nil")
		}
	})
}

func TestWriteFileInPlace(t *testing.T) {
	t.Run("Truncates Longer Content", func(t *testing.T) {
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "hosts")

		if err := os.WriteFile(filename, []byte("a much longer original content"), 0644); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}

		if err := writeFileInPlace(filename, []byte("short"), 0644); err != nil {
			t.Fatalf("writeFileInPlace failed: %v", err)
		}

		got, _ := os.ReadFile(filename)
		if string(got) != "short" {
			t.Errorf("Expected 'short', got %q", got)
		}
	})

	t.Run("Keeps Inode", func(t *testing.T) {
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "hosts")
		if err := os.WriteFile(filename, []byte("old"), 0644); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
		before, _ := os.Stat(filename)

		if err := writeFileInPlace(filename, []byte("new"), 0644); err != nil {
			t.Fatalf("writeFileInPlace failed: %v", err)
		}

		after, _ := os.Stat(filename)
		if !os.SameFile(before, after) {
			t.Error("Expected the same file after an in-place write")
		}
	})
}

func TestFileMode(t *testing.T) {
	tmpDir := t.TempDir()
	filename := filepath.Join(tmpDir, "hosts")

	if got := fileMode(filename, 0640); got != 0640 {
		t.Errorf("Expected fallback 0640 for missing file, got %v", got)
	}

	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not preserved on windows")
	}
	if err := os.WriteFile(filename, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	// Umask can only clear bits, 0600 survives it.
	if got := fileMode(filename, 0644); got != 0600 {
		t.Errorf("Expected 0600, got %v", got)
	}
}
