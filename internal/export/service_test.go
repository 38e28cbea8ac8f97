package export

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"resume-builder/internal/resume"
	"resume-builder/internal/usage"
)

type fakeEngine struct {
	calls int
	fail  bool
	html  string
}

func (f *fakeEngine) PDF(ctx context.Context, html string) ([]byte, error) {
	f.calls++
	f.html = html
	if f.fail {
		return nil, fmt.Errorf("%w: chrome exited", ErrEngine)
	}
	return []byte("%PDF-1.4 fake"), nil
}

func newTestService(engine Engine) (*Service, *resume.Service) {
	resumes := &resume.Service{
		Repo:  resume.NewMemoryRepo(),
		Usage: usage.NewService(),
	}
	return &Service{Resumes: resumes, Engine: engine}, resumes
}

func TestExportEmptyInputNeverLaunchesEngine(t *testing.T) {
	engine := &fakeEngine{}
	svc, _ := newTestService(engine)

	_, err := svc.Export(context.Background(), "user-1", Request{})
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if engine.calls != 0 {
		t.Fatalf("expected engine untouched, got %d calls", engine.calls)
	}
}

func TestExportMarkupPassthrough(t *testing.T) {
	engine := &fakeEngine{}
	svc, _ := newTestService(engine)

	res, err := svc.Export(context.Background(), "user-1", Request{HTML: "<html><body>hi</body></html>"})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(res.PDF) == 0 {
		t.Fatalf("expected non-empty PDF bytes")
	}
	if engine.calls != 1 {
		t.Fatalf("expected exactly one engine call, got %d", engine.calls)
	}
	if res.FileName != "resume.pdf" {
		t.Fatalf("expected default filename, got %q", res.FileName)
	}
}

func TestExportStoredResumeRendersAndNames(t *testing.T) {
	engine := &fakeEngine{}
	svc, resumes := newTestService(engine)

	summary := strings.Repeat("Shipped and maintained production systems. ", 12)
	doc := resume.Document{
		PersonalInfo: resume.PersonalInfo{Name: "Ada Lovelace"},
		Summary:      summary,
	}
	for i := 0; i < 5; i++ {
		doc.Experience = append(doc.Experience, resume.ExperienceItem{
			Position: fmt.Sprintf("Engineer %d", i),
			Company:  "Acme",
			Responsibilities: []string{
				"Designed services", "Reviewed code", "Mentored", "Ran incident response", "Shipped features",
			},
		})
	}
	created, err := resumes.Create(context.Background(), "user-1", "pro", doc, "")
	if err != nil {
		t.Fatalf("create resume: %v", err)
	}

	res, err := svc.Export(context.Background(), "user-1", Request{ResumeID: created.ID})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(res.PDF) == 0 {
		t.Fatalf("expected non-empty PDF bytes")
	}
	if res.FileName != "Ada_Lovelace.pdf" {
		t.Fatalf("expected filename from document name, got %q", res.FileName)
	}
	if !strings.Contains(engine.html, "Engineer 0") {
		t.Fatalf("expected rendered markup handed to engine")
	}
}

func TestExportWhitespaceMarkupFallsBackToStoredResume(t *testing.T) {
	engine := &fakeEngine{}
	svc, resumes := newTestService(engine)

	doc := resume.Document{PersonalInfo: resume.PersonalInfo{Name: "Ada Lovelace"}}
	created, err := resumes.Create(context.Background(), "user-1", "free", doc, "")
	if err != nil {
		t.Fatalf("create resume: %v", err)
	}

	res, err := svc.Export(context.Background(), "user-1", Request{HTML: " \n\t ", ResumeID: created.ID})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.Contains(engine.html, "Ada Lovelace") {
		t.Fatalf("expected rendered stored resume, engine got %q", engine.html)
	}
	if res.FileName != "Ada_Lovelace.pdf" {
		t.Fatalf("expected filename from document name, got %q", res.FileName)
	}
}

func TestExportStoredResumeChecksOwnership(t *testing.T) {
	engine := &fakeEngine{}
	svc, resumes := newTestService(engine)

	created, err := resumes.Create(context.Background(), "owner", "free", resume.Document{}, "")
	if err != nil {
		t.Fatalf("create resume: %v", err)
	}

	_, err = svc.Export(context.Background(), "intruder", Request{ResumeID: created.ID})
	if !errors.Is(err, resume.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if engine.calls != 0 {
		t.Fatalf("expected engine untouched on authorization failure, got %d calls", engine.calls)
	}
}

func TestExportEngineFailureIsUpstreamError(t *testing.T) {
	engine := &fakeEngine{fail: true}
	svc, _ := newTestService(engine)

	_, err := svc.Export(context.Background(), "user-1", Request{HTML: "<html></html>"})
	if !errors.Is(err, ErrEngine) {
		t.Fatalf("expected ErrEngine, got %v", err)
	}
}
