package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// Client abstracts LLM providers for resume analysis.
type Client interface {
	// AnalyzeResume scores a resume against a job description. The raw
	// provider output is returned as-is; callers own parsing and
	// validation.
	AnalyzeResume(ctx context.Context, input AnalyzeInput) (json.RawMessage, error)

	// OptimizeSummary rewrites a professional summary for the given
	// target description.
	OptimizeSummary(ctx context.Context, input SummaryInput) (string, error)
}

// AnalyzeInput captures the inputs needed for resume analysis.
type AnalyzeInput struct {
	ResumeText     string
	JobDescription string
}

// SummaryInput captures the inputs for summary rewriting.
type SummaryInput struct {
	Summary        string
	JobDescription string
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("LLM provider not configured")

// PlaceholderClient is a stub implementation used when no provider key
// is present; handlers surface its error as service-unavailable.
type PlaceholderClient struct{}

func (PlaceholderClient) AnalyzeResume(ctx context.Context, input AnalyzeInput) (json.RawMessage, error) {
	_ = ctx
	_ = input
	return nil, ErrNotConfigured
}

func (PlaceholderClient) OptimizeSummary(ctx context.Context, input SummaryInput) (string, error) {
	_ = ctx
	_ = input
	return "", ErrNotConfigured
}
