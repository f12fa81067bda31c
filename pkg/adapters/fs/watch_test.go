package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/knowling/pkg/adapters/fs"
	"github.com/aretw0/knowling/pkg/core"
)

// nextEvent waits for an event for id, skipping duplicates for other notes.
func nextEvent(t *testing.T, events <-chan core.Event, id string) core.Event {
	t.Helper()
	timeout := time.After(3 * time.Second)
	for {
		select {
		case e, ok := <-events:
			require.True(t, ok, "events channel closed")
			if e.ID == id {
				return e
			}
		case <-timeout:
			t.Fatalf("timed out waiting for event on %s", id)
		}
	}
}

func TestWatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo, path, _ := setupRepo(t)
	existing, err := repo.Save(ctx, "", "before watch")
	require.NoError(t, err)

	events, err := repo.Watch(ctx, "")
	require.NoError(t, err)
	assert.True(t, repo.State().(fs.RepositoryState).WatcherActive)

	t.Run("Update of Known Note", func(t *testing.T) {
		_, err := repo.Save(ctx, existing.ID, "after watch")
		require.NoError(t, err)
		e := nextEvent(t, events, existing.ID)
		assert.Equal(t, core.EventModify, e.Type)
	})

	t.Run("New Note", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(path, "fresh"+fs.Ext), []byte("hi"), 0644))
		e := nextEvent(t, events, "fresh")
		assert.Equal(t, core.EventCreate, e.Type)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, existing.ID))
		var e core.Event
		for e.Type != core.EventDelete {
			e = nextEvent(t, events, existing.ID)
		}
		assert.Equal(t, core.EventDelete, e.Type)
	})

	t.Run("Closes on Cancel", func(t *testing.T) {
		cancel()
		deadline := time.After(3 * time.Second)
		for {
			select {
			case _, ok := <-events:
				if !ok {
					return
				}
			case <-deadline:
				t.Fatal("events channel not closed after cancel")
			}
		}
	})
}

func TestWatch_Pattern(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo, path, _ := setupRepo(t)
	events, err := repo.Watch(ctx, "journal-*.md")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(path, "other"+fs.Ext), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(path, "journal-1"+fs.Ext), []byte("x"), 0644))

	e := nextEvent(t, events, "journal-1")
	assert.Equal(t, core.EventCreate, e.Type)

	select {
	case e := <-events:
		assert.NotEqual(t, "other", e.ID)
	default:
	}
}

func TestWatch_InvalidPattern(t *testing.T) {
	repo, _, _ := setupRepo(t)
	_, err := repo.Watch(context.Background(), "[")
	assert.Error(t, err)
}
