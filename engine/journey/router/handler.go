package router

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/idealday/idr/engine/journey/uc"
	"github.com/idealday/idr/pkg/logger"
)

// Handler handles completion HTTP requests
type Handler struct {
	repo uc.Repository
}

// NewHandler creates a new journey handler
func NewHandler(repo uc.Repository) *Handler {
	return &Handler{repo: repo}
}

// recordRequest is the POST body shape for recording a completion.
type recordRequest struct {
	ClientID   string   `json:"client_id"`
	ModuleSlug string   `json:"module_slug"`
	Rating     *float64 `json:"rating"`
	Note       *string  `json:"note"`
}

// buildRecordInput assembles one typed input from either the POST body or
// the query string, so the use case never inspects transport details.
func (h *Handler) buildRecordInput(c *gin.Context) (*uc.RecordCompletionInput, bool) {
	var req recordRequest
	if c.Request.Method == http.MethodPost {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid request body"})
			return nil, false
		}
	} else {
		req.ClientID = c.Query("client_id")
		req.ModuleSlug = c.Query("module_slug")
		if raw := c.Query("rating"); raw != "" {
			if rating, err := strconv.ParseFloat(raw, 64); err == nil {
				req.Rating = &rating
			}
		}
		if note := c.Query("note"); note != "" {
			req.Note = &note
		}
	}
	return &uc.RecordCompletionInput{
		ClientID:   req.ClientID,
		ModuleSlug: req.ModuleSlug,
		Rating:     req.Rating,
		Note:       req.Note,
	}, true
}

// RecordCompletion handles the record path.
func (h *Handler) RecordCompletion(c *gin.Context) {
	input, ok := h.buildRecordInput(c)
	if !ok {
		return
	}
	out, err := uc.NewRecordCompletion(h.repo, input).Execute(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"ok":         true,
		"completion": out.Completion,
		"user":       out.User,
	})
}

// GetCompletions dispatches a GET to the record path when a module_slug is
// supplied, otherwise to the list path.
func (h *Handler) GetCompletions(c *gin.Context) {
	if c.Query("module_slug") != "" {
		h.RecordCompletion(c)
		return
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}
	completions, err := uc.NewListCompletions(h.repo, &uc.ListCompletionsInput{
		ClientID: c.Query("client_id"),
		Limit:    limit,
	}).Execute(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":          true,
		"count":       len(completions),
		"completions": completions,
	})
}

// respondError maps validation failures to 400 and everything else to an
// opaque 500; the storage cause is logged, never returned to the caller.
func (h *Handler) respondError(c *gin.Context, err error) {
	if uc.IsValidation(err) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	logger.FromContext(c.Request.Context()).Error("Completions request failed", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "storage failure"})
}
