package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/idealday/idr/engine/roadmap"
)

// boundaryMaxMinutes is the wider clamp the HTTP layer applies before plan
// construction applies its own [5,30] clamp.
const boundaryMaxMinutes = 40

// Handler handles roadmap HTTP requests
type Handler struct{}

// NewHandler creates a new roadmap handler
func NewHandler() *Handler {
	return &Handler{}
}

// GetRoadmap renders a 7-day plan as JSON, pretty JSON or HTML.
func (h *Handler) GetRoadmap(c *gin.Context) {
	minutes := roadmap.ParseMinutes(c.Query("minutes"))
	minutes = roadmap.Clamp(minutes, roadmap.MinMinutes, boundaryMaxMinutes)
	result := roadmap.Generate(roadmap.Input{
		Minutes:  minutes,
		Energy:   c.Query("energy"),
		Focus:    c.Query("focus"),
		ClientID: c.Query("client_id"),
	})
	switch {
	case c.Query("format") == "html":
		c.HTML(http.StatusOK, roadmap.TemplateName, result)
	case c.Query("pretty") == "1":
		c.IndentedJSON(http.StatusOK, result)
	default:
		c.JSON(http.StatusOK, result)
	}
}
