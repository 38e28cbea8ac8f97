package gap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"resume-builder/internal/llm"
	"resume-builder/internal/resume"
	"resume-builder/internal/usage"
)

type fakeLLM struct {
	response string
	err      error
	lastIn   llm.AnalyzeInput
}

func (f *fakeLLM) AnalyzeResume(ctx context.Context, input llm.AnalyzeInput) (json.RawMessage, error) {
	f.lastIn = input
	if f.err != nil {
		return nil, f.err
	}
	return json.RawMessage(f.response), nil
}

func (f *fakeLLM) OptimizeSummary(ctx context.Context, input llm.SummaryInput) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func newGapService(client llm.Client) (*Service, *resume.Service) {
	resumes := &resume.Service{
		Repo:  resume.NewMemoryRepo(),
		Usage: usage.NewService(),
	}
	return &Service{Resumes: resumes, LLM: client}, resumes
}

func TestAnalyzeSendsFlattenedDocument(t *testing.T) {
	client := &fakeLLM{response: `{"score": 80, "feedback": "solid", "missingKeywords": []}`}
	svc, _ := newGapService(client)

	doc := resume.Document{
		PersonalInfo: resume.PersonalInfo{Name: "Ada"},
		Skills: []resume.SkillGroup{
			{Category: "Languages", Skills: []string{"Go", "SQL"}},
		},
	}
	analysis, err := svc.Analyze(context.Background(), doc, "Backend engineer role")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if analysis.Score != 80 {
		t.Fatalf("expected score 80, got %d", analysis.Score)
	}
	if client.lastIn.JobDescription != "Backend engineer role" {
		t.Fatalf("expected job description forwarded, got %q", client.lastIn.JobDescription)
	}
	if want := "Languages: Go, SQL"; !strings.Contains(client.lastIn.ResumeText, want) {
		t.Fatalf("expected resume text to contain %q, got:\n%s", want, client.lastIn.ResumeText)
	}
}

func TestAnalyzeProviderFailureIsUpstream(t *testing.T) {
	client := &fakeLLM{err: fmt.Errorf("connection refused")}
	svc, _ := newGapService(client)

	_, err := svc.Analyze(context.Background(), resume.Document{}, "jd")
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestAnalyzeMalformedResponseIsUpstream(t *testing.T) {
	client := &fakeLLM{response: "I cannot produce JSON today"}
	svc, _ := newGapService(client)

	_, err := svc.Analyze(context.Background(), resume.Document{}, "jd")
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestAnalyzeStoredUsesStoredJobDescription(t *testing.T) {
	client := &fakeLLM{response: `{"score": 55, "feedback": "ok", "missingKeywords": []}`}
	svc, resumes := newGapService(client)

	created, err := resumes.Create(context.Background(), "user-1", "free", resume.Document{}, "Stored JD text")
	if err != nil {
		t.Fatalf("create resume: %v", err)
	}

	if _, err := svc.AnalyzeStored(context.Background(), "user-1", created.ID, ""); err != nil {
		t.Fatalf("AnalyzeStored: %v", err)
	}
	if client.lastIn.JobDescription != "Stored JD text" {
		t.Fatalf("expected stored job description, got %q", client.lastIn.JobDescription)
	}
}

func TestAnalyzeStoredRespectsOwnership(t *testing.T) {
	client := &fakeLLM{response: `{"score": 55, "feedback": "ok", "missingKeywords": []}`}
	svc, resumes := newGapService(client)

	created, err := resumes.Create(context.Background(), "owner", "free", resume.Document{}, "jd")
	if err != nil {
		t.Fatalf("create resume: %v", err)
	}

	if _, err := svc.AnalyzeStored(context.Background(), "intruder", created.ID, "jd"); !errors.Is(err, resume.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestAcceptPersistsMergedSkills(t *testing.T) {
	client := &fakeLLM{}
	svc, resumes := newGapService(client)

	created, err := resumes.Create(context.Background(), "user-1", "free", resume.Document{}, "")
	if err != nil {
		t.Fatalf("create resume: %v", err)
	}

	updated, remaining, err := svc.Accept(context.Background(), "user-1", created.ID, "GraphQL", analysisWith("GraphQL", "AWS"))
	if err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if len(updated.Document.Skills) != 1 || updated.Document.Skills[0].Skills[0] != "GraphQL" {
		t.Fatalf("expected merged skills persisted, got %+v", updated.Document.Skills)
	}
	if len(remaining.MissingKeywords) != 1 || remaining.MissingKeywords[0] != "AWS" {
		t.Fatalf("expected snapshot without accepted keyword, got %+v", remaining.MissingKeywords)
	}

	fetched, err := resumes.Get(context.Background(), "user-1", created.ID)
	if err != nil {
		t.Fatalf("get resume: %v", err)
	}
	if len(fetched.Document.Skills) != 1 {
		t.Fatalf("expected persisted skills group, got %+v", fetched.Document.Skills)
	}
}
