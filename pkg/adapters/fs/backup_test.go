package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/hosts/pkg/core"
)

func TestRepository_Backups(t *testing.T) {
	ctx := context.Background()

	t.Run("Backup Before Each Save", func(t *testing.T) {
		path := setupHostsFile(t, "127.0.0.1 localhost")
		backupDir := filepath.Join(t.TempDir(), "backups")
		service, repo := newTestService(path, Config{BackupDir: backupDir})

		require.NoError(t, service.Add(ctx, "10.0.0.1", "one"))
		require.NoError(t, service.Add(ctx, "10.0.0.2", "two"))

		backups, err := repo.ListBackups()
		require.NoError(t, err)
		require.Len(t, backups, 2)

		// Newest first: it holds the state before the second add.
		newest, err := os.ReadFile(backups[0].Path)
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1 localhost\n10.0.0.1 one", string(newest))

		oldest, err := os.ReadFile(backups[1].Path)
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1 localhost", string(oldest))
	})

	t.Run("Idempotent Add Makes No Backup", func(t *testing.T) {
		path := setupHostsFile(t, "10.0.0.1 one")
		service, repo := newTestService(path, Config{BackupDir: filepath.Join(t.TempDir(), "b")})

		require.NoError(t, service.Add(ctx, "10.0.0.1", "one"))

		backups, err := repo.ListBackups()
		require.NoError(t, err)
		assert.Empty(t, backups)
	})

	t.Run("Prunes Beyond Limit", func(t *testing.T) {
		path := setupHostsFile(t, "")
		service, repo := newTestService(path, Config{
			BackupDir:   filepath.Join(t.TempDir(), "b"),
			BackupLimit: 2,
		})

		for _, host := range []string{"a", "b", "c", "d"} {
			require.NoError(t, service.Add(ctx, "10.0.0.1", host))
		}

		backups, err := repo.ListBackups()
		require.NoError(t, err)
		assert.Len(t, backups, 2)
	})

	t.Run("Restore", func(t *testing.T) {
		path := setupHostsFile(t, "127.0.0.1 localhost")
		service, repo := newTestService(path, Config{BackupDir: filepath.Join(t.TempDir(), "b")})

		require.NoError(t, service.Remove(ctx, "127.0.0.1", nil))
		assert.Equal(t, "", readHosts(t, path))

		backups, err := repo.ListBackups()
		require.NoError(t, err)
		require.Len(t, backups, 1)

		require.NoError(t, repo.Restore(backups[0].Name))
		assert.Equal(t, "127.0.0.1 localhost", readHosts(t, path))

		require.NoError(t, repo.Restore(backups[0].Path), "absolute paths are accepted too")
	})

	t.Run("Restore Rejects Names Outside Backup Dir", func(t *testing.T) {
		dir := t.TempDir()
		path := setupHostsFile(t, "127.0.0.1 localhost")
		backupDir := filepath.Join(dir, "backups")
		require.NoError(t, os.MkdirAll(backupDir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "secret"), []byte("10.6.6.6 evil"), 0644))

		repo := NewRepository(Config{Path: path, BackupDir: backupDir})

		for _, name := range []string{"../secret", "sub/" + BackupPrefix + "x", "secret"} {
			err := repo.Restore(name)
			assert.ErrorIs(t, err, core.ErrInvalidArgument, name)
		}
		assert.Equal(t, "127.0.0.1 localhost", readHosts(t, path))
	})

	t.Run("Restore Read Only", func(t *testing.T) {
		path := setupHostsFile(t, "x")
		repo := NewRepository(Config{Path: path, ReadOnly: true, BackupDir: t.TempDir()})
		assert.ErrorIs(t, repo.Restore("whatever"), core.ErrReadOnly)
	})

	t.Run("Without Backup Dir", func(t *testing.T) {
		repo := NewRepository(Config{Path: setupHostsFile(t, "x")})

		_, err := repo.Backup()
		assert.Error(t, err)

		backups, err := repo.ListBackups()
		require.NoError(t, err)
		assert.Empty(t, backups)
	})

	t.Run("Manual Backup", func(t *testing.T) {
		path := setupHostsFile(t, "10.0.0.1 manual")
		repo := NewRepository(Config{Path: path, BackupDir: filepath.Join(t.TempDir(), "b")})

		dst, err := repo.Backup()
		require.NoError(t, err)
		assert.Equal(t, "10.0.0.1 manual", readHosts(t, dst))
	})
}
