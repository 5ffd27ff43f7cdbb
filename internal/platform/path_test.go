package platform_test

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/hosts/internal/platform"
)

func TestResolvePath(t *testing.T) {
	base := t.TempDir()
	t.Setenv("HOSTS_TEST_DIR", base)

	cwd, err := filepath.Abs(".")
	require.NoError(t, err)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Empty Selects Default", "", platform.DefaultPath()},
		{"Home", "~", xdg.Home},
		{"Home Relative", "~/hosts", filepath.Join(xdg.Home, "hosts")},
		{"Env Var", "$HOSTS_TEST_DIR/hosts", filepath.Join(base, "hosts")},
		{"Relative", "fixtures/hosts", filepath.Join(cwd, "fixtures", "hosts")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := platform.ResolvePath(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsSystemPath(t *testing.T) {
	assert.True(t, platform.IsSystemPath(platform.DefaultPath()))
	assert.True(t, platform.IsSystemPath(filepath.Join(platform.DefaultPath(), "..", filepath.Base(platform.DefaultPath()))))
	assert.False(t, platform.IsSystemPath(filepath.Join(t.TempDir(), "hosts")))
}
