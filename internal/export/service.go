package export

import (
	"context"
	"strings"
	"time"

	"resume-builder/internal/render"
	"resume-builder/internal/resume"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/telemetry"
)

// Request carries either ready-made markup or a stored resume id. When
// both are present the markup wins; when a resume id is used the server
// re-renders on demand.
type Request struct {
	HTML     string
	ResumeID string
	Variant  string
}

// Result is a finished export.
type Result struct {
	PDF      []byte
	FileName string
}

// Service coordinates fetch, render and print for PDF exports.
type Service struct {
	Resumes *resume.Service
	Engine  Engine
}

// Export produces a PDF for the given request on behalf of userID.
func (s *Service) Export(ctx context.Context, userID string, req Request) (Result, error) {
	if strings.TrimSpace(req.HTML) == "" && strings.TrimSpace(req.ResumeID) == "" {
		return Result{}, ErrEmptyInput
	}

	metrics.IncExportStarted()
	start := time.Now()

	res, err := s.export(ctx, userID, req)
	metrics.ObserveExportDurationMs(float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.IncExportFailed()
		telemetry.Error("export.failed", map[string]any{
			"user_id":   userID,
			"resume_id": req.ResumeID,
			"error":     err.Error(),
		})
		return Result{}, err
	}

	metrics.IncExportCompleted()
	telemetry.Info("export.completed", map[string]any{
		"user_id":     userID,
		"resume_id":   req.ResumeID,
		"bytes":       len(res.PDF),
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return res, nil
}

func (s *Service) export(ctx context.Context, userID string, req Request) (Result, error) {
	html := req.HTML
	fileName := "resume.pdf"

	if strings.TrimSpace(html) == "" {
		stored, err := s.Resumes.Get(ctx, userID, req.ResumeID)
		if err != nil {
			return Result{}, err
		}
		variant := req.Variant
		if variant == "" {
			variant = stored.Document.Template
		}
		html, err = render.Render(stored.Document, variant)
		if err != nil {
			return Result{}, err
		}
		fileName = pdfFileName(stored.Document.PersonalInfo.Name)
	}

	pdf, err := s.Engine.PDF(ctx, html)
	if err != nil {
		return Result{}, err
	}
	return Result{PDF: pdf, FileName: fileName}, nil
}

func pdfFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "resume.pdf"
	}
	return strings.ReplaceAll(name, " ", "_") + ".pdf"
}
