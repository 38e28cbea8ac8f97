package gap

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/resume"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the gap-analysis service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ai/ats-score", h.atsScore)
	rg.POST("/ai/accept-keyword", h.acceptKeyword)
	rg.POST("/ai/optimize-summary", h.optimizeSummary)
}

type atsScoreRequest struct {
	ResumeID       string           `json:"resumeId"`
	Document       *resume.Document `json:"document"`
	JobDescription string           `json:"jobDescription"`
}

func (h *Handler) atsScore(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req atsScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid JSON payload", nil)
		return
	}

	var (
		analysis Analysis
		err      error
	)
	switch {
	case req.ResumeID != "":
		analysis, err = h.Svc.AnalyzeStored(c.Request.Context(), userID, req.ResumeID, req.JobDescription)
	case req.Document != nil:
		if strings.TrimSpace(req.JobDescription) == "" {
			respond.Error(c, http.StatusBadRequest, "invalid_request", "jobDescription is required", nil)
			return
		}
		analysis, err = h.Svc.Analyze(c.Request.Context(), *req.Document, req.JobDescription)
	default:
		respond.Error(c, http.StatusBadRequest, "invalid_request", "either resumeId or document is required", nil)
		return
	}
	if err != nil {
		h.writeError(c, err)
		return
	}
	respond.OK(c, analysis)
}

type acceptKeywordRequest struct {
	ResumeID string   `json:"resumeId"`
	Keyword  string   `json:"keyword"`
	Analysis Analysis `json:"analysis"`
}

func (h *Handler) acceptKeyword(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req acceptKeywordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid JSON payload", nil)
		return
	}
	if req.ResumeID == "" || strings.TrimSpace(req.Keyword) == "" {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "resumeId and keyword are required", nil)
		return
	}

	updated, remaining, err := h.Svc.Accept(c.Request.Context(), userID, req.ResumeID, req.Keyword, req.Analysis)
	if err != nil {
		h.writeError(c, err)
		return
	}
	respond.OK(c, gin.H{
		"document": updated.Document,
		"analysis": remaining,
	})
}

type optimizeSummaryRequest struct {
	Summary        string `json:"summary"`
	JobDescription string `json:"jobDescription"`
}

func (h *Handler) optimizeSummary(c *gin.Context) {
	var req optimizeSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid JSON payload", nil)
		return
	}
	if strings.TrimSpace(req.Summary) == "" || strings.TrimSpace(req.JobDescription) == "" {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "summary and jobDescription are required", nil)
		return
	}

	summary, err := h.Svc.OptimizeSummary(c.Request.Context(), req.Summary, req.JobDescription)
	if err != nil {
		h.writeError(c, err)
		return
	}
	respond.OK(c, gin.H{"summary": summary})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, resume.ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "invalid_request", "jobDescription is required", nil)
	case errors.Is(err, resume.ErrForbidden):
		respond.Error(c, http.StatusForbidden, "forbidden", "you do not own this resume", nil)
	case errors.Is(err, resume.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	case errors.Is(err, ErrUpstream):
		respond.Error(c, http.StatusBadGateway, "analyzer_unavailable", "analysis provider failed", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "unexpected error", nil)
	}
}
