package core

import "context"

// Backend is the note service: it stores notes, assigns their identity and
// computes similarity. knowling never persists anything itself.
type Backend interface {
	// List returns every stored note.
	List(ctx context.Context) ([]Note, error)

	// Get returns a single note by its ID.
	Get(ctx context.Context, id string) (Note, error)

	// Save creates a note when id is empty and updates it otherwise.
	// The returned note carries the assigned ID and the new Modified time.
	Save(ctx context.Context, id, text string) (Note, error)

	// Delete removes a note by its ID.
	Delete(ctx context.Context, id string) error

	// Related returns the notes whose similarity to id is at least threshold,
	// most similar first.
	Related(ctx context.Context, id string, threshold float64) ([]ScoredNote, error)
}

// Categorizer is implemented by backends that keep labels on notes.
type Categorizer interface {
	// SetCategories replaces the labels of a note. A label that already
	// exists under a different case is reused with its stored spelling.
	SetCategories(ctx context.Context, id string, labels []string) (Note, error)

	// Categories returns every label known to the backend.
	Categories(ctx context.Context) ([]string, error)
}

// Watchable defines an interface for backends that can report changes.
type Watchable interface {
	// Watch emits events for notes matching pattern until ctx is done.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
