package rpc

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/aretw0/knowling/pkg/core"
)

// NewServer returns a handler exposing backend over HTTP.
func NewServer(backend core.Backend, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	h := &handler{backend: backend, logger: logger}

	r := chi.NewRouter()
	r.Use(loggingMiddleware(logger))
	r.Use(middleware.Recoverer)

	r.Route("/notes", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.get)
			r.Put("/", h.update)
			r.Delete("/", h.delete)
			r.Get("/related", h.related)
			r.Put("/categories", h.categorize)
		})
	})
	r.Get("/categories", h.categories)
	return r
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Debug("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
			)
		})
	}
}

type handler struct {
	backend core.Backend
	logger  *slog.Logger
}

// noteID returns the {id} segment. chi matches on the escaped path when the
// request carries one, so the segment is unescaped here.
func noteID(r *http.Request) string {
	id := chi.URLParam(r, "id")
	if r.URL.RawPath == "" {
		return id
	}
	if unescaped, err := url.PathUnescape(id); err == nil {
		return unescaped
	}
	return id
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	notes, err := h.backend.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if notes == nil {
		notes = []core.Note{}
	}
	h.writeJSON(w, http.StatusOK, listResponse{Notes: notes})
}

func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	note, err := h.backend.Get(r.Context(), noteID(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, note)
}

func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, "", http.StatusCreated)
}

func (h *handler) update(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, noteID(r), http.StatusOK)
}

func (h *handler) save(w http.ResponseWriter, r *http.Request, id string, status int) {
	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	note, err := h.backend.Save(r.Context(), id, req.Text)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, status, note)
}

func (h *handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.backend.Delete(r.Context(), noteID(r)); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) related(w http.ResponseWriter, r *http.Request) {
	threshold := 0.0
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid threshold: " + raw})
			return
		}
		threshold = v
	}

	related, err := h.backend.Related(r.Context(), noteID(r), threshold)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if related == nil {
		related = []core.ScoredNote{}
	}
	h.writeJSON(w, http.StatusOK, relatedResponse{Related: related})
}

func (h *handler) categorize(w http.ResponseWriter, r *http.Request) {
	c, ok := h.backend.(core.Categorizer)
	if !ok {
		h.writeError(w, core.ErrUnsupported)
		return
	}
	var req categoriesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	note, err := c.SetCategories(r.Context(), noteID(r), req.Categories)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, note)
}

func (h *handler) categories(w http.ResponseWriter, r *http.Request) {
	c, ok := h.backend.(core.Categorizer)
	if !ok {
		h.writeError(w, core.ErrUnsupported)
		return
	}
	labels, err := c.Categories(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if labels == nil {
		labels = []string{}
	}
	h.writeJSON(w, http.StatusOK, categoriesResponse{Categories: labels})
}

func (h *handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, core.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, core.ErrReadOnly):
		status = http.StatusForbidden
	case errors.Is(err, core.ErrInvalidID), errors.Is(err, core.ErrMissingID):
		status = http.StatusBadRequest
	case errors.Is(err, core.ErrUnsupported):
		status = http.StatusNotImplemented
	default:
		h.logger.Error("backend failure", "error", err)
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already sent.
		h.logger.Warn("failed to encode response", "error", err)
	}
}
