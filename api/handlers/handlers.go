// Package handlers provides HTTP handlers for the DynaAlign API.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/semaphore"

	"github.com/aria-lang/dynaalign-go/internal/cache"
	"github.com/aria-lang/dynaalign-go/internal/config"
	"github.com/aria-lang/dynaalign-go/internal/kmer"
	"github.com/aria-lang/dynaalign-go/internal/logging"
	"github.com/aria-lang/dynaalign-go/internal/metrics"
	"github.com/aria-lang/dynaalign-go/internal/sequence"
	"github.com/aria-lang/dynaalign-go/internal/stats"
	"github.com/aria-lang/dynaalign-go/internal/substitution"
)

// Handler serves the /api routes. Request fields left out fall back to
// the configured defaults.
type Handler struct {
	cfg     *config.Config
	cache   *cache.Cache[[]byte]
	metrics *metrics.Metrics
	logger  *slog.Logger

	// builds bounds concurrent matrix computations; nil if unbounded.
	builds *semaphore.Weighted
}

// New creates a Handler. A nil logger discards output.
func New(cfg *config.Config, m *metrics.Metrics, logger *slog.Logger) (*Handler, error) {
	c, err := cache.New[[]byte](cfg.CacheSize)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Discard()
	}
	h := &Handler{cfg: cfg, cache: c, metrics: m, logger: logger}
	if cfg.MaxConcurrent > 0 {
		h.builds = semaphore.NewWeighted(int64(cfg.MaxConcurrent))
	}
	return h, nil
}

// Routes mounts every API endpoint on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/matrices", h.MatricesHandler)

	r.Route("/align", func(r chi.Router) {
		r.Post("/score", h.ScoreHandler)
		r.Post("/similarity", h.AlignHandler)
	})

	r.Route("/similarity", func(r chi.Router) {
		r.Post("/exact", h.ExactMatrixHandler)
		r.Post("/minhash", h.MinHashMatrixHandler)
		r.Post("/jaccard", h.JaccardMatrixHandler)
	})

	r.Route("/sequence", func(r chi.Router) {
		r.Post("/validate", h.ValidateHandler)
		r.Post("/stats", h.SequenceSetStatsHandler)
	})

	r.Route("/kmer", func(r chi.Router) {
		r.Post("/shingles", h.ShinglesHandler)
		r.Post("/shared", h.SharedShinglesHandler)
	})
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeRaw(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// statusFor maps input errors to 400, cancelled waits to 503 and
// everything else to 500.
func statusFor(err error) int {
	var (
		ise *sequence.InvalidSymbolError
		ese *sequence.EmptySequenceError
		ce  *substitution.ConfigurationError
		ike *kmer.InvalidKError
		mbe *http.MaxBytesError
	)
	switch {
	case errors.As(err, &mbe):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &ise), errors.As(err, &ese), errors.As(err, &ce), errors.As(err, &ike),
		errors.Is(err, stats.ErrNoSequences):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

// decode reads a JSON body into v, answering 400 (or 413) itself on
// failure.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: "request body too large"})
			return false
		}
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

// observe times fn and reports it under kind with batch size n.
func (h *Handler) observe(kind string, n int, fn func() error) error {
	start := time.Now()
	err := fn()
	if h.metrics != nil {
		h.metrics.ObserveComputation(kind, n, time.Since(start), err)
	}
	return err
}

// acquire waits for a build slot. The returned func releases it.
func (h *Handler) acquire(ctx context.Context) (func(), error) {
	if h.builds == nil {
		return func() {}, nil
	}
	if err := h.builds.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("waiting for a build slot: %w", err)
	}
	return func() { h.builds.Release(1) }, nil
}

// cached returns the stored response for key, or computes, stores and
// returns a fresh one.
func (h *Handler) cached(key uint64, compute func() (any, error)) ([]byte, error) {
	if body, ok := h.cache.Get(key); ok {
		if h.metrics != nil {
			h.metrics.CacheHit()
		}
		return body, nil
	}
	if h.cache.Enabled() && h.metrics != nil {
		h.metrics.CacheMiss()
	}

	v, err := compute()
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	h.cache.Add(key, body)
	return body, nil
}

func intOr(p *int, def int) int {
	if p != nil {
		return *p
	}
	return def
}

func stringOr(s, def string) string {
	if s != "" {
		return s
	}
	return def
}
