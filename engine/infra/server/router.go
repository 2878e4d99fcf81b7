package server

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/idealday/idr/engine/catalog"
	catalogrouter "github.com/idealday/idr/engine/catalog/router"
	journeyrouter "github.com/idealday/idr/engine/journey/router"
	journeyuc "github.com/idealday/idr/engine/journey/uc"
	"github.com/idealday/idr/engine/roadmap"
	roadmaprouter "github.com/idealday/idr/engine/roadmap/router"
	"github.com/idealday/idr/pkg/logger"
)

// HealthChecker reports whether the persistence layer is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Deps carries the collaborators the router needs; tests inject stubs here.
type Deps struct {
	Health  HealthChecker
	Journey journeyuc.Repository
	Catalog catalog.Repository
}

func (s *Server) buildRouter(log logger.Logger) *gin.Engine {
	if s.cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(LoggerMiddleware(log))
	if s.cfg.Server.CORSEnabled {
		r.Use(CORSMiddleware(s.cfg.Server))
	}
	r.SetHTMLTemplate(roadmap.Templates())

	api := r.Group("/api")
	roadmaprouter.RegisterRoutes(api)
	journeyrouter.RegisterRoutes(api, s.deps.Journey)
	catalogrouter.RegisterRoutes(api, s.deps.Catalog)
	api.GET("/health", s.healthHandler)

	r.HandleMethodNotAllowed = true
	r.NoMethod(methodNotAllowedHandler(r))
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "not found"})
	})
	return r
}

// methodNotAllowedHandler responds 405 with an Allow header listing the
// methods registered for the requested path.
func methodNotAllowedHandler(r *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var methods []string
		for _, route := range r.Routes() {
			if route.Path == c.Request.URL.Path {
				methods = append(methods, route.Method)
			}
		}
		sort.Strings(methods)
		if len(methods) > 0 {
			c.Header("Allow", strings.Join(methods, ", "))
		}
		c.JSON(http.StatusMethodNotAllowed, gin.H{"ok": false, "error": "method not allowed"})
	}
}

func (s *Server) healthHandler(c *gin.Context) {
	ctx := c.Request.Context()
	if err := s.deps.Health.HealthCheck(ctx); err != nil {
		logger.FromContext(ctx).Warn("Health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "database unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "status": "healthy", "time": time.Now().UTC()})
}
