package platform

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/knowling/pkg/core"
	"github.com/aretw0/knowling/pkg/timeline"
)

// Adapter names accepted by WithAdapter.
const (
	AdapterFS   = "fs"
	AdapterHTTP = "http"
)

// options holds the internal configuration for knowling.
type options struct {
	backend    core.Backend
	logger     *slog.Logger
	adapter    string
	calendar   timeline.Calendar
	httpClient *http.Client
	config     map[string]any
}

// Option defines a functional option for configuring knowling.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		adapter: AdapterFS,
		config:  make(map[string]any),
	}
}

func buildOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// WithAutoInit creates the vault directory when it is missing.
func WithAutoInit(auto bool) Option {
	return func(o *options) {
		o.config["auto_init"] = auto
	}
}

// WithLogger sets the logger for the client and the backend.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithBackend injects a ready backend (e.g. a mock). The URI and adapter
// are then ignored.
func WithBackend(backend core.Backend) Option {
	return func(o *options) {
		o.backend = backend
	}
}

// WithAdapter selects the backend by name: "fs" (default) or "http".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithCalendar sets the calendar used to label note groups.
func WithCalendar(cal timeline.Calendar) Option {
	return func(o *options) {
		o.calendar = cal
	}
}

// WithHTTPClient sets the HTTP client of the "http" adapter.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.httpClient = hc
	}
}

// WithReadOnly enables read-only mode: writes fail with core.ErrReadOnly and
// the vault is never created.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.config["read_only"] = enabled
	}
}

// WithClock overrides the clock the fs adapter stamps notes with.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.config["clock"] = now
	}
}

// WithWatcherErrorHandler registers a callback for runtime watcher failures
// (e.g. permission denied) which are otherwise only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.config["watcher_error_handler"] = fn
	}
}
