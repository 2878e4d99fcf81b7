package router

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the roadmap routes
func RegisterRoutes(api *gin.RouterGroup) {
	handler := NewHandler()
	api.GET("/roadmap", handler.GetRoadmap)
}
