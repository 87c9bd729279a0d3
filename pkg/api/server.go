package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ontouml/ontokit/pkg/cache"
	"github.com/ontouml/ontokit/pkg/coloring"
	"github.com/ontouml/ontokit/pkg/integrations/ontouml"
	"github.com/ontouml/ontokit/pkg/ontology"
	"github.com/ontouml/ontokit/pkg/schema"
	"github.com/ontouml/ontokit/pkg/storage"
)

// MaxBodySize bounds request bodies.
const MaxBodySize = 16 << 20

// Config holds the collaborators of a [Server]. Every field is optional.
type Config struct {
	// Logger defaults to log.Default().
	Logger *log.Logger

	// Palette defaults to ontology.DefaultPalette().
	Palette *ontology.Palette

	// DisableColoring turns /v1/paint into a no-op.
	DisableColoring bool

	// Cache stores export documents by snapshot hash. Nil disables caching.
	Cache cache.Cache
	// CacheTTL applies to cached export documents.
	CacheTTL time.Duration
	// Keyer derives cache keys. Defaults to cache.NewDefaultKeyer().
	Keyer cache.Keyer

	// Store archives exports. Nil disables archiving and /v1/exports.
	Store storage.Store

	// Verifier forwards /v1/verify. Nil disables the route.
	Verifier *ontouml.Client

	// Metrics is mounted at /metrics when set.
	Metrics http.Handler
}

// Server is the HTTP API.
type Server struct {
	logger     *log.Logger
	engine     *coloring.Engine
	serializer *schema.Serializer
	cache      cache.Cache
	ttl        time.Duration
	keyer      cache.Keyer
	store      storage.Store
	verifier   *ontouml.Client
	router     chi.Router
}

// New builds a server from cfg.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	palette := ontology.DefaultPalette()
	if cfg.Palette != nil {
		palette = *cfg.Palette
	}
	c := cfg.Cache
	if c == nil {
		c = cache.NewNullCache()
	}
	keyer := cfg.Keyer
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}

	s := &Server{
		logger:     logger,
		engine:     coloring.New(palette, coloring.Options{Enabled: !cfg.DisableColoring, Logger: logger}),
		serializer: schema.NewSerializer(logger),
		cache:      cache.Instrumented(c, "export"),
		ttl:        cfg.CacheTTL,
		keyer:      keyer,
		store:      cfg.Store,
		verifier:   cfg.Verifier,
	}

	r := chi.NewRouter()
	r.Use(withRequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics)
	}

	r.Route("/v1", func(r chi.Router) {
		r.Post("/export", s.handleExport)
		r.Post("/paint", s.handlePaint)
		if s.verifier != nil {
			r.Post("/verify", s.handleVerify)
		}
		if s.store != nil {
			r.Get("/exports", s.handleListExports)
			r.Get("/exports/{id}", s.handleGetExport)
		}
	})

	s.router = r
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
