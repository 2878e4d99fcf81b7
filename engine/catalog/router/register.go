package router

import (
	"github.com/gin-gonic/gin"
	"github.com/idealday/idr/engine/catalog"
)

// RegisterRoutes registers the catalog routes
func RegisterRoutes(api *gin.RouterGroup, repo catalog.Repository) {
	handler := NewHandler(repo)
	api.GET("/modules", handler.ListModules)
	api.GET("/badges", handler.ListBadges)
}
