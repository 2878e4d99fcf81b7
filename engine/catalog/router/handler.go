package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/idealday/idr/engine/catalog"
	"github.com/idealday/idr/pkg/logger"
)

// Handler handles catalog HTTP requests
type Handler struct {
	repo catalog.Repository
}

// NewHandler creates a new catalog handler
func NewHandler(repo catalog.Repository) *Handler {
	return &Handler{repo: repo}
}

// ListModules returns all coaching modules.
func (h *Handler) ListModules(c *gin.Context) {
	modules, err := h.repo.ListModules(c.Request.Context())
	if err != nil {
		h.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "count": len(modules), "modules": modules})
}

// ListBadges returns all badges.
func (h *Handler) ListBadges(c *gin.Context) {
	badges, err := h.repo.ListBadges(c.Request.Context())
	if err != nil {
		h.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "count": len(badges), "badges": badges})
}

func (h *Handler) respondStorageError(c *gin.Context, err error) {
	logger.FromContext(c.Request.Context()).Error("Catalog request failed", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "storage failure"})
}
