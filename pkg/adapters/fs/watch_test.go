package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/hosts/pkg/core"
)

func waitForWatcher(t *testing.T, repo *Repository, expected bool) {
	t.Helper()

	deadline := time.After(2 * time.Second)
	for {
		state, ok := repo.State().(RepositoryState)
		if ok && state.WatcherActive == expected {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("timeout waiting for watcher state = %v", expected)
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestWatch_ExternalModification(t *testing.T) {
	path := setupHostsFile(t, "127.0.0.1 localhost")
	repo := NewRepository(Config{Path: path})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	events, err := repo.Watch(ctx)
	require.NoError(t, err)
	waitForWatcher(t, repo, true)

	// Give the watcher a moment (naive)
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("127.0.0.1 localhost\n10.0.0.1 added"), 0644))

	select {
	case event := <-events:
		assert.Contains(t, []core.EventType{core.EventModify, core.EventCreate}, event.Type)
		assert.Equal(t, filepath.Clean(path), event.Path)
	case <-ctx.Done():
		t.Fatal("Timed out waiting for event")
	}
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	path := setupHostsFile(t, "127.0.0.1 localhost")
	repo := NewRepository(Config{Path: path})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := repo.Watch(ctx)
	require.NoError(t, err)
	waitForWatcher(t, repo, true)

	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), "hosts.allow"), []byte("x"), 0644))

	select {
	case event := <-events:
		t.Fatalf("unexpected event %v", event)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatch_IgnoresOwnWrites(t *testing.T) {
	path := setupHostsFile(t, "127.0.0.1 localhost")
	repo := NewRepository(Config{Path: path})
	service := core.NewService(repo, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := service.Watch(ctx)
	require.NoError(t, err)
	waitForWatcher(t, repo, true)

	require.NoError(t, service.Add(ctx, "10.0.0.1", "self.local"))

	select {
	case event := <-events:
		t.Fatalf("own write reported as %v", event)
	case <-time.After(400 * time.Millisecond):
	}
}

func TestWatch_ClosesOnCancel(t *testing.T) {
	path := setupHostsFile(t, "127.0.0.1 localhost")
	repo := NewRepository(Config{Path: path})

	ctx, cancel := context.WithCancel(context.Background())
	events, err := repo.Watch(ctx)
	require.NoError(t, err)
	waitForWatcher(t, repo, true)

	cancel()

	select {
	case _, ok := <-events:
		assert.False(t, ok, "channel should be closed")
	case <-time.After(2 * time.Second):
		t.Fatal("events channel not closed after cancel")
	}
	waitForWatcher(t, repo, false)
}

func TestWatch_CanceledContext(t *testing.T) {
	repo := NewRepository(Config{Path: setupHostsFile(t, "")})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Watch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDebouncer_CollapsesBursts(t *testing.T) {
	d := newDebouncer(30 * time.Millisecond)
	got := make(chan core.Event, 10)

	for i := 0; i < 5; i++ {
		d.add(core.Event{Type: core.EventModify, Path: "/etc/hosts", Timestamp: int64(i)}, func(e core.Event) {
			got <- e
		})
	}

	select {
	case e := <-got:
		assert.Equal(t, int64(4), e.Timestamp, "last event wins")
	case <-time.After(time.Second):
		t.Fatal("debounced event never fired")
	}

	assert.True(t, d.stopAndWait(time.Second))
	assert.Len(t, got, 0)

	// Stopped debouncers drop new events.
	d.add(core.Event{Path: "/etc/hosts"}, func(e core.Event) { got <- e })
	time.Sleep(60 * time.Millisecond)
	assert.Len(t, got, 0)
}
