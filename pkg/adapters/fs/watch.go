package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/knowling/pkg/core"
)

// DefaultWatchPattern matches every note file in the vault.
const DefaultWatchPattern = "**/*" + Ext

// Watch streams note changes under the vault until ctx is cancelled, at
// which point the returned channel is closed. Only files whose name relative
// to the vault matches pattern are reported.
func (r *Repository) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if pattern == "" {
		pattern = DefaultWatchPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid watch pattern: %q", pattern)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(r.Path); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch vault: %w", err)
	}

	// Atomic writes surface as a Create on the final name, so updates to
	// notes that already exist are told apart by this set.
	known := make(map[string]bool)
	notes, err := r.List(ctx)
	if err != nil {
		_ = watcher.Close()
		return nil, err
	}
	for _, n := range notes {
		known[n.ID] = true
	}

	w := &watchLoop{repo: r, pattern: pattern, watcher: watcher, known: known, events: make(chan core.Event)}
	r.setWatcherActive(true)

	lifecycle.Go(ctx, w.run, lifecycle.WithErrorHandler(func(err error) {
		if r.config.ErrorHandler != nil {
			r.config.ErrorHandler(fmt.Errorf("watcher panic: %w", err))
			return
		}
		r.config.Logger.Error("watcher panic", "error", err)
	}))

	return w.events, nil
}

type watchLoop struct {
	repo    *Repository
	pattern string
	watcher *fsnotify.Watcher
	known   map[string]bool
	events  chan core.Event
}

func (w *watchLoop) run(ctx context.Context) error {
	defer close(w.events)
	defer w.repo.setWatcherActive(false)
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			e, ok := w.translate(event)
			if !ok {
				continue
			}
			select {
			case w.events <- e:
			case <-ctx.Done():
				return nil
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.repo.config.Logger.Error("fsnotify error", "error", err)
			if w.repo.config.ErrorHandler != nil {
				w.repo.config.ErrorHandler(err)
			}
		}
	}
}

// translate maps a raw fsnotify event to a note event.
func (w *watchLoop) translate(event fsnotify.Event) (core.Event, bool) {
	rel, err := filepath.Rel(w.repo.Path, event.Name)
	if err != nil {
		return core.Event{}, false
	}
	rel = filepath.ToSlash(rel)
	base := filepath.Base(rel)
	if strings.HasPrefix(base, TempFilePrefix) || filepath.Ext(base) != Ext {
		return core.Event{}, false
	}
	if match, _ := doublestar.Match(w.pattern, rel); !match {
		return core.Event{}, false
	}

	id := strings.TrimSuffix(base, Ext)
	var typ core.EventType
	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		if !w.known[id] {
			return core.Event{}, false
		}
		delete(w.known, id)
		typ = core.EventDelete
	case event.Has(fsnotify.Create):
		if w.known[id] {
			typ = core.EventModify
		} else {
			typ = core.EventCreate
		}
		w.known[id] = true
	case event.Has(fsnotify.Write):
		w.known[id] = true
		typ = core.EventModify
	default:
		return core.Event{}, false
	}

	w.repo.config.Logger.Debug("note event", "type", typ, "id", id)
	return core.Event{Type: typ, ID: id, Timestamp: w.repo.config.Now().Unix()}, true
}

var _ core.Watchable = (*Repository)(nil)
