// Command dynaalign-server provides a REST API for DynaAlign operations.
//
// Usage:
//
//	dynaalign-server [options]
//
// Every option can also be set through a DYNAALIGN_* environment variable;
// flags win over the environment. Run with -h for the full list.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/aria-lang/dynaalign-go/api/handlers"
	"github.com/aria-lang/dynaalign-go/api/middleware"
	"github.com/aria-lang/dynaalign-go/internal/config"
	"github.com/aria-lang/dynaalign-go/internal/logging"
	"github.com/aria-lang/dynaalign-go/internal/metrics"
	"github.com/aria-lang/dynaalign-go/pkg/dynaalign"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "dynaalign-server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(flag.CommandLine, os.Args[1:], os.LookupEnv)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		return err
	}

	r, err := newRouter(cfg, logger, metrics.New())
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			"addr", "http://"+cfg.Addr(),
			"version", dynaalign.Version(),
			"matrix", cfg.Matrix,
			"workers", cfg.Workers,
			"cache_size", cfg.CacheSize,
			"rate_limit", cfg.RateLimit,
			"max_concurrent", cfg.MaxConcurrent)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- fmt.Errorf("listen on %s: %w", cfg.Addr(), err)
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	server.SetKeepAlivesEnabled(false)
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

func newRouter(cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) (http.Handler, error) {
	h, err := handlers.New(cfg, m, logger)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics(m))
	r.Use(chimiddleware.Recoverer)
	if cfg.RateLimit > 0 {
		r.Use(middleware.RateLimit(rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)))
	}
	r.Use(chimiddleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", m.Handler())

	r.Route("/api", h.Routes)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(homePage))
	})

	return r, nil
}

const homePage = `<!DOCTYPE html>
<html>
<head>
    <title>DynaAlign API</title>
    <style>
        body { font-family: system-ui, sans-serif; max-width: 800px; margin: 2rem auto; padding: 0 1rem; }
        h1 { color: #2563eb; }
        pre { background: #f3f4f6; padding: 1rem; border-radius: 0.5rem; overflow-x: auto; }
        .endpoint { margin: 1rem 0; padding: 1rem; border: 1px solid #e5e7eb; border-radius: 0.5rem; }
        .method { display: inline-block; padding: 0.25rem 0.5rem; background: #10b981; color: white; border-radius: 0.25rem; font-size: 0.875rem; }
    </style>
</head>
<body>
    <h1>DynaAlign API</h1>
    <p>Pairwise protein similarity by affine-gap alignment and k-mer MinHash.</p>

    <h2>Endpoints</h2>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/align/similarity</code>
        <p>Gotoh global alignment of two sequences.</p>
        <pre>{"sequence1": "MKTAYIAKQR", "sequence2": "MKTAFIAKQR", "matrix": "BLOSUM62", "gap_open": 10, "gap_extend": 4}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/align/score</code>
        <p>Linear-gap Needleman-Wunsch score.</p>
        <pre>{"sequence1": "ACD", "sequence2": "ACE", "match": 1, "mismatch": -1, "gap": -2}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/similarity/exact</code>
        <p>All-pairs alignment similarity matrix.</p>
        <pre>{"sequences": ["ACD", "ACE", "AC"], "labels": ["a", "b", "c"]}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/similarity/minhash</code>
        <p>MinHash estimate of k-mer Jaccard similarity.</p>
        <pre>{"sequences": ["MKTAYIAKQR", "MKTAFIAKQR"], "k": 3, "num_hash": 128, "seed": 42}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/similarity/jaccard</code>
        <p>Exact k-mer Jaccard similarity matrix.</p>
        <pre>{"sequences": ["ACDEF", "CDEFG"], "k": 3}</pre>
    </div>

    <div class="endpoint">
        <span class="method">GET</span> <code>/api/matrices</code>
        <p>List substitution matrices.</p>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/sequence/validate</code>, <code>/api/sequence/stats</code>,
        <code>/api/kmer/shingles</code>, <code>/api/kmer/shared</code>
        <p>Sequence validation, batch statistics and k-mer sets.</p>
    </div>

    <p>Prometheus metrics are served at <code>/metrics</code>.</p>
</body>
</html>`
