package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/idealday/idr/engine/catalog"
	"github.com/idealday/idr/engine/infra/postgres"
	journeypg "github.com/idealday/idr/engine/journey/infra/postgres"
	"github.com/idealday/idr/pkg/config"
	"github.com/idealday/idr/pkg/logger"
	"github.com/idealday/idr/pkg/version"
)

const (
	httpReadTimeout  = 15 * time.Second
	httpWriteTimeout = 15 * time.Second
	httpIdleTimeout  = 60 * time.Second
)

// Server wires the HTTP router to its collaborators and owns the listener
// lifecycle.
type Server struct {
	cfg    *config.Config
	deps   Deps
	router *gin.Engine
}

// New builds a Server backed by the given postgres store.
func New(cfg *config.Config, store *postgres.Store, log logger.Logger) *Server {
	deps := Deps{
		Health:  store,
		Journey: journeypg.NewRepository(store.Pool()),
		Catalog: catalog.NewPostgresRepository(store.Pool()),
	}
	return NewWithDeps(cfg, deps, log)
}

// NewWithDeps builds a Server from explicit collaborators.
func NewWithDeps(cfg *config.Config, deps Deps, log logger.Logger) *Server {
	s := &Server{cfg: cfg, deps: deps}
	s.router = s.buildRouter(log)
	return s
}

// Router exposes the gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run serves HTTP until the context is canceled, then shuts down gracefully
// within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)
	httpServer := &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  httpReadTimeout,
		WriteTimeout: httpWriteTimeout,
		IdleTimeout:  httpIdleTimeout,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info("Server listening",
			"addr", httpServer.Addr,
			"version", version.Version,
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}
	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
