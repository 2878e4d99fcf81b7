package router

import (
	"github.com/gin-gonic/gin"
	"github.com/idealday/idr/engine/journey/uc"
)

// RegisterRoutes registers the completion routes
func RegisterRoutes(api *gin.RouterGroup, repo uc.Repository) {
	handler := NewHandler(repo)
	api.POST("/completions", handler.RecordCompletion)
	api.GET("/completions", handler.GetCompletions)
}
