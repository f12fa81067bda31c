// Package fs implements the note service on top of a local directory (the
// vault). Each note is a Markdown file named after its ID with a YAML
// frontmatter header holding the ID and timestamps.
package fs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aretw0/knowling/pkg/core"
)

// Ext is the extension of note files.
const Ext = ".md"

// ErrInvalidID is returned for IDs that cannot be used as a file name.
var ErrInvalidID = core.ErrInvalidID

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path      string
	AutoInit  bool // create Path and SystemDir when missing
	ReadOnly  bool
	SystemDir string // vault marker directory, e.g. ".knowling"
	Logger    *slog.Logger
	// Now is the clock used for Created/Modified. Defaults to time.Now.
	Now func() time.Time
	// ErrorHandler receives runtime watcher failures, which are otherwise only logged.
	ErrorHandler func(error)
}

// Repository implements core.Backend using the filesystem.
type Repository struct {
	Path   string
	config Config

	writeMu sync.Mutex // serialises Save/Delete

	mu            sync.RWMutex
	watcherActive bool
	lastSave      *time.Time
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	if config.SystemDir == "" {
		config.SystemDir = ".knowling"
	}
	return &Repository{
		Path:   config.Path,
		config: config,
	}
}

// Initialize ensures the vault directory exists. With AutoInit it also
// creates the vault and its system directory, which marks the vault root.
func (r *Repository) Initialize(ctx context.Context) error {
	info, err := os.Stat(r.Path)
	switch {
	case err == nil && !info.IsDir():
		return fmt.Errorf("vault path is not a directory: %s", r.Path)
	case err == nil:
	case !os.IsNotExist(err):
		return fmt.Errorf("failed to stat vault: %w", err)
	case r.config.ReadOnly || !r.config.AutoInit:
		return fmt.Errorf("vault path does not exist: %s", r.Path)
	}
	if r.config.ReadOnly || !r.config.AutoInit {
		return nil
	}

	sysDir := filepath.Join(r.Path, r.config.SystemDir)
	if _, err := os.Stat(sysDir); err == nil {
		return nil
	}
	if err := os.MkdirAll(sysDir, 0755); err != nil {
		return fmt.Errorf("failed to create vault directory: %w", err)
	}
	r.config.Logger.Debug("vault initialized", "path", r.Path, "system_dir", r.config.SystemDir)
	return nil
}

func (r *Repository) filename(id string) (string, error) {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) || strings.HasPrefix(id, TempFilePrefix) {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return filepath.Join(r.Path, id+Ext), nil
}

// Get retrieves a note by ID.
func (r *Repository) Get(ctx context.Context, id string) (core.Note, error) {
	if err := ctx.Err(); err != nil {
		return core.Note{}, err
	}
	path, err := r.filename(id)
	if err != nil {
		return core.Note{}, err
	}
	return r.read(id, path)
}

func (r *Repository) read(id, path string) (core.Note, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return core.Note{}, fmt.Errorf("%w: %s", core.ErrNotFound, id)
		}
		return core.Note{}, err
	}
	defer f.Close()

	note, hasHeader, err := parseNote(f)
	if err != nil {
		return core.Note{}, fmt.Errorf("failed to parse note %s: %w", id, err)
	}
	note.ID = id

	if !hasHeader || note.Created == 0 || note.Modified == 0 {
		// Hand written file: missing timestamps come from the file's mtime.
		info, err := f.Stat()
		if err != nil {
			return core.Note{}, err
		}
		mtime := info.ModTime().Unix()
		if note.Modified == 0 {
			note.Modified = mtime
		}
		if note.Created == 0 {
			note.Created = min(mtime, note.Modified)
		}
	}
	return note, nil
}

// List returns every note in the vault, most recently modified first.
// Files that fail to parse are logged and skipped.
func (r *Repository) List(ctx context.Context) ([]core.Note, error) {
	entries, err := os.ReadDir(r.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vault: %w", err)
	}

	notes := make([]core.Note, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != Ext || strings.HasPrefix(name, TempFilePrefix) {
			continue
		}

		id := strings.TrimSuffix(name, Ext)
		note, err := r.read(id, filepath.Join(r.Path, name))
		if err != nil {
			r.config.Logger.Warn("skipping unreadable note", "file", name, "error", err)
			continue
		}
		notes = append(notes, note)
	}

	sort.SliceStable(notes, func(i, j int) bool {
		if notes[i].Modified != notes[j].Modified {
			return notes[i].Modified > notes[j].Modified
		}
		return notes[i].ID < notes[j].ID
	})
	return notes, nil
}

// Save creates a note with a fresh ID when id is empty, otherwise it
// replaces the text of an existing note and keeps its categories.
// Modified never moves backwards. Line endings are stored as "\n", and the
// returned note carries the normalised text.
func (r *Repository) Save(ctx context.Context, id, text string) (core.Note, error) {
	if r.config.ReadOnly {
		return core.Note{}, core.ErrReadOnly
	}
	if err := ctx.Err(); err != nil {
		return core.Note{}, err
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")

	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	now := r.config.Now().Unix()
	var note core.Note
	if id == "" {
		note = core.Note{ID: uuid.NewString(), Text: text, Created: now, Modified: now}
	} else {
		existing, err := r.Get(ctx, id)
		if err != nil {
			return core.Note{}, err
		}
		note = existing
		note.Text = text
		note.Modified = max(now, existing.Modified)
	}

	if err := r.write(note); err != nil {
		return core.Note{}, err
	}
	r.config.Logger.Debug("note saved", "id", note.ID, "modified", note.Modified)
	return note, nil
}

func (r *Repository) write(note core.Note) error {
	path, err := r.filename(note.ID)
	if err != nil {
		return err
	}
	data, err := serializeNote(note)
	if err != nil {
		return fmt.Errorf("failed to serialize note: %w", err)
	}
	if err := writeFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	r.recordSave()
	return nil
}

// Delete removes a note by its ID.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if r.config.ReadOnly {
		return core.ErrReadOnly
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := r.filename(id)
	if err != nil {
		return err
	}

	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", core.ErrNotFound, id)
		}
		return fmt.Errorf("failed to remove file: %w", err)
	}
	r.config.Logger.Debug("note deleted", "id", id)
	return nil
}

// Related scores every other note against id and returns those at or above
// threshold, most similar first.
func (r *Repository) Related(ctx context.Context, id string, threshold float64) ([]core.ScoredNote, error) {
	source, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	notes, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	sourceTF := termFrequencies(source.Text)
	related := make([]core.ScoredNote, 0)
	for _, n := range notes {
		if n.ID == source.ID {
			continue
		}
		score := cosine(sourceTF, termFrequencies(n.Text))
		if score >= threshold {
			related = append(related, core.ScoredNote{Note: n, Score: score})
		}
	}

	sort.SliceStable(related, func(i, j int) bool {
		if related[i].Score != related[j].Score {
			return related[i].Score > related[j].Score
		}
		return related[i].Note.ID < related[j].Note.ID
	})
	return related, nil
}

var _ core.Backend = (*Repository)(nil)
