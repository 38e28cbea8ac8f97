package resume

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
)

const maxImportBytes = 10 << 20

// Handler wires HTTP handlers to the resume service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.create)
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/:id", h.get)
	rg.PUT("/resumes/:id", h.update)
	rg.DELETE("/resumes/:id", h.remove)
	rg.POST("/resumes/import", h.importPDF)
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	plan := middleware.UserPlanFromContext(c)

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid JSON payload", nil)
		return
	}

	var doc Document
	if len(req.Document) > 0 {
		var err error
		doc, err = DecodeDocument(req.Document)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "invalid_document", err.Error(), nil)
			return
		}
	}

	res, err := h.Svc.Create(c.Request.Context(), userID, plan, doc, req.JobDescription)
	if err != nil {
		h.writeError(c, err)
		return
	}
	respond.Created(c, toResponse(res))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	resumes, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	items := make([]ListItem, 0, len(resumes))
	for _, r := range resumes {
		items = append(items, toListItem(r))
	}
	respond.OK(c, gin.H{"resumes": items})
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	res, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	respond.OK(c, toResponse(res))
}

func (h *Handler) update(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid JSON payload", nil)
		return
	}
	if len(req.Document) == 0 {
		respond.Error(c, http.StatusBadRequest, "invalid_document", "document is required", nil)
		return
	}
	doc, err := DecodeDocument(req.Document)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_document", err.Error(), nil)
		return
	}

	res, err := h.Svc.Update(c.Request.Context(), userID, c.Param("id"), doc, req.JobDescription)
	if err != nil {
		h.writeError(c, err)
		return
	}
	respond.OK(c, toResponse(res))
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	if err := h.Svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) importPDF(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	plan := middleware.UserPlanFromContext(c)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "file field is required", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImportBytes+1))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "failed to read upload", nil)
		return
	}
	if len(data) > maxImportBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "file exceeds the 10MB limit", nil)
		return
	}

	res, err := h.Svc.ImportPDF(c.Request.Context(), userID, plan, header.Filename, data)
	if err != nil {
		h.writeError(c, err)
		return
	}
	respond.Created(c, toResponse(res))
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "invalid_document", err.Error(), nil)
	case errors.Is(err, ErrForbidden):
		respond.Error(c, http.StatusForbidden, "forbidden", "you do not own this resume", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	case errors.Is(err, ErrQuotaExceeded):
		respond.Error(c, http.StatusForbidden, "plan_limit_reached", "resume limit reached for your plan", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "unexpected error", nil)
	}
}
