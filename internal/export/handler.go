package export

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/resume"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the export service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches export routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/export/pdf", h.exportPDF)
}

type exportRequest struct {
	HTML     string `json:"html"`
	ResumeID string `json:"resumeId"`
	Variant  string `json:"variant"`
}

func (h *Handler) exportPDF(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid JSON payload", nil)
		return
	}

	res, err := h.Svc.Export(c.Request.Context(), userID, Request{
		HTML:     req.HTML,
		ResumeID: req.ResumeID,
		Variant:  req.Variant,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.FileName))
	c.Data(http.StatusOK, "application/pdf", res.PDF)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmptyInput):
		respond.Error(c, http.StatusBadRequest, "invalid_request", "either html or resumeId is required", nil)
	case errors.Is(err, resume.ErrForbidden):
		respond.Error(c, http.StatusForbidden, "forbidden", "you do not own this resume", nil)
	case errors.Is(err, resume.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	case errors.Is(err, ErrEngine):
		respond.Error(c, http.StatusServiceUnavailable, "export_unavailable", "PDF engine failed to render the document", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "unexpected error", nil)
	}
}
