package gap

import (
	"context"
	"fmt"
	"strings"

	"resume-builder/internal/llm"
	"resume-builder/internal/resume"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/telemetry"
)

// Service runs gap analyses against the configured LLM provider.
type Service struct {
	Resumes *resume.Service
	LLM     llm.Client
}

// Analyze scores a document against a job description. The document is
// read-only here; analysis never mutates stored state.
func (s *Service) Analyze(ctx context.Context, doc resume.Document, jobDescription string) (Analysis, error) {
	metrics.IncAnalyzeStarted()

	raw, err := s.LLM.AnalyzeResume(ctx, llm.AnalyzeInput{
		ResumeText:     PlainText(doc),
		JobDescription: jobDescription,
	})
	if err != nil {
		metrics.IncAnalyzeFailed()
		telemetry.Error("analyze.failed", map[string]any{"error": err.Error()})
		return Analysis{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	analysis, err := ParseAnalysis(string(raw))
	if err != nil {
		metrics.IncAnalyzeFailed()
		telemetry.Error("analyze.parse_failed", map[string]any{"error": err.Error()})
		return Analysis{}, err
	}

	metrics.IncAnalyzeCompleted()
	telemetry.Info("analyze.completed", map[string]any{
		"score":            analysis.Score,
		"missing_keywords": len(analysis.MissingKeywords),
	})
	return analysis, nil
}

// AnalyzeStored fetches an owned resume and analyzes it. An empty job
// description falls back to the one stored with the resume.
func (s *Service) AnalyzeStored(ctx context.Context, userID, resumeID, jobDescription string) (Analysis, error) {
	stored, err := s.Resumes.Get(ctx, userID, resumeID)
	if err != nil {
		return Analysis{}, err
	}
	if jobDescription == "" {
		jobDescription = stored.JobDescription
	}
	if strings.TrimSpace(jobDescription) == "" {
		return Analysis{}, resume.ErrInvalidInput
	}
	return s.Analyze(ctx, stored.Document, jobDescription)
}

// Accept merges an accepted keyword into a stored resume's skills and
// persists the result through the normal full-replace path.
func (s *Service) Accept(ctx context.Context, userID, resumeID, keyword string, analysis Analysis) (resume.Resume, Analysis, error) {
	stored, err := s.Resumes.Get(ctx, userID, resumeID)
	if err != nil {
		return resume.Resume{}, Analysis{}, err
	}

	doc, remaining := AcceptKeyword(stored.Document, analysis, keyword)
	updated, err := s.Resumes.Update(ctx, userID, resumeID, doc, "")
	if err != nil {
		return resume.Resume{}, Analysis{}, err
	}
	return updated, remaining, nil
}

// OptimizeSummary rewrites a summary for the target job description.
func (s *Service) OptimizeSummary(ctx context.Context, summary, jobDescription string) (string, error) {
	text, err := s.LLM.OptimizeSummary(ctx, llm.SummaryInput{
		Summary:        summary,
		JobDescription: jobDescription,
	})
	if err != nil {
		telemetry.Error("optimize_summary.failed", map[string]any{"error": err.Error()})
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return strings.TrimSpace(text), nil
}

// PlainText flattens a document into the text block sent to the
// analyzer.
func PlainText(doc resume.Document) string {
	var b strings.Builder
	writeLine := func(s string) {
		if s != "" {
			b.WriteString(s)
			b.WriteString("\n")
		}
	}

	writeLine(doc.PersonalInfo.Name)
	writeLine(doc.Summary)

	for _, exp := range doc.Experience {
		writeLine(fmt.Sprintf("%s at %s (%s)", exp.Position, exp.Company, dateSpan(exp.StartDate, exp.EndDate, exp.Current)))
		for _, r := range exp.Responsibilities {
			writeLine("- " + r)
		}
	}
	for _, edu := range doc.Education {
		writeLine(fmt.Sprintf("%s, %s", edu.Degree, edu.Institution))
	}
	for _, proj := range doc.Projects {
		writeLine(proj.Name + ": " + proj.Description)
		if len(proj.Technologies) > 0 {
			writeLine("Technologies: " + strings.Join(proj.Technologies, ", "))
		}
	}
	for _, cert := range doc.Certifications {
		writeLine(cert.Name + " (" + cert.Issuer + ")")
	}
	for _, group := range doc.Skills {
		writeLine(group.Category + ": " + strings.Join(group.Skills, ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}

func dateSpan(start, end string, current bool) string {
	if current {
		end = "Present"
	}
	if start == "" && end == "" {
		return ""
	}
	return start + " - " + end
}
