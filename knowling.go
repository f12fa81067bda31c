package knowling

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/knowling/internal/platform"
	"github.com/aretw0/knowling/pkg/client"
	"github.com/aretw0/knowling/pkg/core"
	"github.com/aretw0/knowling/pkg/timeline"
)

// Version exposes the version of the library.
// See version.go for the implementation using go:embed.

// --- Configuration ---

// Option defines a functional option for configuring knowling.
type Option = platform.Option

// WithAutoInit creates the vault directory when it is missing.
func WithAutoInit(auto bool) Option {
	return platform.WithAutoInit(auto)
}

// WithLogger sets the logger for the client and the backend.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithBackend injects a ready backend, skipping adapter selection.
func WithBackend(backend core.Backend) Option {
	return platform.WithBackend(backend)
}

// WithAdapter selects the backend by name: "fs" (default) or "http".
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithCalendar sets the calendar used to label note groups.
func WithCalendar(cal timeline.Calendar) Option {
	return platform.WithCalendar(cal)
}

// WithHTTPClient sets the HTTP client of the "http" adapter.
func WithHTTPClient(hc *http.Client) Option {
	return platform.WithHTTPClient(hc)
}

// WithReadOnly makes every write fail with core.ErrReadOnly.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithClock overrides the clock notes are stamped with by the "fs" adapter.
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// WithWatcherErrorHandler registers a callback for runtime watcher failures.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New opens a backend and returns a client for it.
func New(uri string, opts ...Option) (*client.Client, error) {
	return platform.New(uri, opts...)
}

// Open returns the backend alone, e.g. to serve it with rpc.NewServer.
func Open(uri string, opts ...Option) (core.Backend, error) {
	return platform.Open(uri, opts...)
}

// --- Utils ---

// FindVaultRoot looks upwards from startDir for a vault marker.
func FindVaultRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}
