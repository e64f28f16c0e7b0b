package handler

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookkeeper/internal/csvexport"
	"bookkeeper/internal/service"
)

// SuggestionHandler handles the suggestion review endpoints.
type SuggestionHandler struct {
	suggestionService service.SuggestionService
}

// NewSuggestionHandler creates a new SuggestionHandler.
func NewSuggestionHandler(suggestionService service.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{suggestionService: suggestionService}
}

type reviewRequest struct {
	ReviewedBy string `json:"reviewed_by"`
	Notes      string `json:"notes"`
	Reason     string `json:"reason"`
}

// ListPending handles GET /api/v1/suggestions
func (h *SuggestionHandler) ListPending(c *gin.Context) {
	suggestions, err := h.suggestionService.ListPending(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, suggestions)
}

// ExportCSV handles GET /api/v1/suggestions/export
func (h *SuggestionHandler) ExportCSV(c *gin.Context) {
	suggestions, err := h.suggestionService.ListPending(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="suggestions.csv"`)
	c.Writer.Write(csvexport.BOM)

	w := csvexport.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		return
	}
	for i := range suggestions {
		if err := w.WriteSuggestion(&suggestions[i]); err != nil {
			return
		}
	}
	if err := w.Flush(); err != nil {
		log.Printf("suggestionHandler.ExportCSV: flush failed: %v", err)
	}
}

// Approve handles POST /api/v1/suggestions/:id/approve
func (h *SuggestionHandler) Approve(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	overview, err := h.suggestionService.Approve(c.Request.Context(), &service.ApproveSuggestionInput{
		SuggestionID: id,
		ReviewedBy:   req.ReviewedBy,
		Notes:        req.Notes,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, overview)
}

// Reject handles POST /api/v1/suggestions/:id/reject
func (h *SuggestionHandler) Reject(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	overview, err := h.suggestionService.Reject(c.Request.Context(), &service.RejectSuggestionInput{
		SuggestionID: id,
		ReviewedBy:   req.ReviewedBy,
		Reason:       req.Reason,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, overview)
}
