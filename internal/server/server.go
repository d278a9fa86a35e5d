package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/evolveer/docker-python-framework/internal/config"
	"github.com/evolveer/docker-python-framework/internal/handlers"
)

// Config holds server dependencies.
type Config struct {
	App config.Config
	// System serves every route. When nil, New builds one from App.
	System *handlers.SystemHandler
}

// Server is the HTTP server for the landing page and system API.
type Server struct {
	Router chi.Router
	Config Config
}

// New creates a new Server with all routes and middleware configured.
func New(cfg Config) *Server {
	if cfg.System == nil {
		cfg.System = handlers.NewSystemHandler(cfg.App)
	}

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.RequestID)
	r.Use(RequestLogger)
	r.Use(CORSMiddleware(r))
	r.Use(Recoverer(cfg.App.Debug))
	r.Use(chimw.GetHead)

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	s := &Server{Router: r, Config: cfg}
	s.registerRoutes()

	return s
}

// Run starts the HTTP server on the given address with graceful shutdown.
// It returns early with the listener error if the address cannot be bound.
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return fmt.Errorf("listening on %s: %w", addr, err)
	case sig := <-quit:
		slog.Info("shutting down server", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	slog.Info("server stopped gracefully")
	return nil
}

func (s *Server) registerRoutes() {
	sys := s.Config.System

	s.Router.Get("/", sys.Home)

	s.Router.Route("/api", func(r chi.Router) {
		r.Get("/health", sys.Health)
		r.Get("/info", sys.Info)
		r.Get("/env", sys.Env)
	})
}
