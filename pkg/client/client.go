// Package client wraps a note service backend with the calls a user
// interface needs. Failures are logged and returned inside results; no call
// panics or returns a bare error to the caller.
package client

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/knowling/pkg/core"
	"github.com/aretw0/knowling/pkg/timeline"
	"github.com/aretw0/knowling/pkg/title"
)

// Client delegates every call to its backend. It holds no note state and is
// safe for concurrent use.
type Client struct {
	backend  core.Backend
	logger   *slog.Logger
	calendar timeline.Calendar
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger failures are reported to.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithCalendar sets the calendar used by GroupedNotes.
func WithCalendar(cal timeline.Calendar) Option {
	return func(c *Client) {
		if cal != nil {
			c.calendar = cal
		}
	}
}

// New creates a Client for backend.
func New(backend core.Backend, opts ...Option) *Client {
	c := &Client{
		backend:  backend,
		logger:   slog.New(slog.DiscardHandler),
		calendar: timeline.English,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Calendar returns the calendar used to label buckets.
func (c *Client) Calendar() timeline.Calendar {
	return c.calendar
}

// GetNote returns a single note. On failure the value is the zero note.
func (c *Client) GetNote(ctx context.Context, id string) ResultOf[core.Note] {
	if id == "" {
		return ResultOf[core.Note]{Err: core.ErrMissingID}
	}
	note, err := c.backend.Get(ctx, id)
	if err != nil {
		return ResultOf[core.Note]{Err: c.fail(core.OpGet, id, err)}
	}
	return ResultOf[core.Note]{Value: note}
}

// DeleteNote deletes the note and, on success, navigates home.
// An empty id is reported without calling the backend or navigating.
func (c *Client) DeleteNote(ctx context.Context, id string, nav Navigator) Result {
	if id == "" {
		c.logger.Warn("delete called without a note ID")
		return Result{Err: core.ErrMissingID}
	}

	if err := c.backend.Delete(ctx, id); err != nil {
		return Result{Err: c.fail(core.OpDelete, id, err)}
	}
	c.logger.Info("note deleted", "id", id)

	if nav == nil {
		return Result{}
	}
	if err := nav.Navigate(ctx, RouteHome); err != nil {
		c.logger.Error("navigation after delete failed", "id", id, "route", RouteHome, "error", err)
		return Result{Err: fmt.Errorf("navigate to %s: %w", RouteHome, err)}
	}
	return Result{}
}

// UpsertNote updates the note when id is set and creates it otherwise.
// Creation yields the assigned ID; updates yield an empty value.
// On failure the value is empty and the note may not have been saved.
func (c *Client) UpsertNote(ctx context.Context, id, text string) ResultOf[string] {
	note, err := c.backend.Save(ctx, id, text)
	if err != nil {
		return ResultOf[string]{Err: c.fail(core.OpSave, id, err)}
	}

	if id != "" {
		c.logger.Info("note updated", "id", note.ID)
		return ResultOf[string]{}
	}
	c.logger.Info("note created", "id", note.ID)
	return ResultOf[string]{Value: note.ID}
}

// RelatedNotes returns the notes similar to id above threshold.
// On failure the value is an empty list.
func (c *Client) RelatedNotes(ctx context.Context, id string, threshold float64) ResultOf[[]core.ScoredNote] {
	related, err := c.backend.Related(ctx, id, threshold)
	if err != nil {
		return ResultOf[[]core.ScoredNote]{Value: []core.ScoredNote{}, Err: c.fail(core.OpRelated, id, err)}
	}
	if related == nil {
		related = []core.ScoredNote{}
	}
	return ResultOf[[]core.ScoredNote]{Value: related}
}

// ListNotes returns every note. On failure the value is an empty list.
func (c *Client) ListNotes(ctx context.Context) ResultOf[[]core.Note] {
	notes, err := c.backend.List(ctx)
	if err != nil {
		return ResultOf[[]core.Note]{Value: []core.Note{}, Err: c.fail(core.OpList, "", err)}
	}
	if notes == nil {
		notes = []core.Note{}
	}
	c.logger.Debug("notes listed", "count", len(notes))
	return ResultOf[[]core.Note]{Value: notes}
}

// GroupedNotes lists the notes and groups them relative to now.
// A failed listing yields no buckets.
func (c *Client) GroupedNotes(ctx context.Context, now time.Time) ResultOf[[]timeline.Bucket] {
	listed := c.ListNotes(ctx)
	buckets := timeline.Group(listed.Value, now, timeline.WithCalendar(c.calendar))
	return ResultOf[[]timeline.Bucket]{Value: buckets, Err: listed.Err}
}

// SetCategories replaces the labels of a note and returns the updated note.
// Backends without category support report core.ErrUnsupported.
func (c *Client) SetCategories(ctx context.Context, id string, labels []string) ResultOf[core.Note] {
	if id == "" {
		return ResultOf[core.Note]{Err: core.ErrMissingID}
	}
	cat, ok := c.backend.(core.Categorizer)
	if !ok {
		return ResultOf[core.Note]{Err: c.fail(core.OpCategorize, id, core.ErrUnsupported)}
	}
	note, err := cat.SetCategories(ctx, id, labels)
	if err != nil {
		return ResultOf[core.Note]{Err: c.fail(core.OpCategorize, id, err)}
	}
	c.logger.Info("note categorized", "id", id, "categories", note.Categories)
	return ResultOf[core.Note]{Value: note}
}

// Categories lists every label known to the backend.
// On failure the value is an empty list.
func (c *Client) Categories(ctx context.Context) ResultOf[[]string] {
	cat, ok := c.backend.(core.Categorizer)
	if !ok {
		return ResultOf[[]string]{Value: []string{}, Err: c.fail(core.OpCategories, "", core.ErrUnsupported)}
	}
	labels, err := cat.Categories(ctx)
	if err != nil {
		return ResultOf[[]string]{Value: []string{}, Err: c.fail(core.OpCategories, "", err)}
	}
	if labels == nil {
		labels = []string{}
	}
	return ResultOf[[]string]{Value: labels}
}

// Watch forwards change events when the backend supports them.
func (c *Client) Watch(ctx context.Context, pattern string) ResultOf[<-chan core.Event] {
	w, ok := c.backend.(core.Watchable)
	if !ok {
		return ResultOf[<-chan core.Event]{Err: fmt.Errorf("watch: %w", core.ErrUnsupported)}
	}
	events, err := w.Watch(ctx, pattern)
	if err != nil {
		c.logger.Error("watch failed", "pattern", pattern, "error", err)
		return ResultOf[<-chan core.Event]{Err: err}
	}
	return ResultOf[<-chan core.Event]{Value: events}
}

// NoteTitle returns the display title of a note's text.
func NoteTitle(text string) string {
	return title.NoteTitle(text)
}

func (c *Client) fail(op core.Op, id string, err error) error {
	c.logger.Error("note service call failed", "op", op, "id", id, "error", err)
	return &core.RemoteError{Op: op, ID: id, Err: err}
}
