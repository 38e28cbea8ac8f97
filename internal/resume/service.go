package resume

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/extract"
	"resume-builder/internal/usage"
)

// Service contains business logic for resumes. Every operation re-verifies
// ownership server-side; a failed operation leaves the stored row
// untouched.
type Service struct {
	Repo  Repo
	Usage *usage.Service
}

// Create stores a new resume for the owner, consuming one unit of the
// owner's plan quota.
func (s *Service) Create(ctx context.Context, userID, plan string, doc Document, jobDescription string) (Resume, error) {
	if userID == "" {
		return Resume{}, ErrInvalidInput
	}
	ok, _, err := s.Usage.CanConsume(ctx, userID, plan, 1)
	if err != nil {
		return Resume{}, err
	}
	if !ok {
		return Resume{}, ErrQuotaExceeded
	}

	now := time.Now().UTC()
	res := Resume{
		ID:             uuid.NewString(),
		UserID:         userID,
		Document:       Normalize(doc),
		SchemaVersion:  SchemaVersion,
		JobDescription: jobDescription,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Repo.Create(ctx, res); err != nil {
		return Resume{}, err
	}
	if _, err := s.Usage.Consume(ctx, userID, plan, 1); err != nil && !errors.Is(err, usage.ErrLimitReached) {
		return Resume{}, err
	}
	return res, nil
}

// Get fetches a resume, distinguishing forbidden from not-found.
func (s *Service) Get(ctx context.Context, userID, id string) (Resume, error) {
	res, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Resume{}, err
	}
	if res.UserID != userID {
		return Resume{}, ErrForbidden
	}
	return res, nil
}

// List returns the owner's resumes, newest-first.
func (s *Service) List(ctx context.Context, userID string) ([]Resume, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// Update is a full-document replace with last-write-wins semantics. The
// owner is taken from the verified identity, never from the payload.
func (s *Service) Update(ctx context.Context, userID, id string, doc Document, jobDescription string) (Resume, error) {
	existing, err := s.Get(ctx, userID, id)
	if err != nil {
		return Resume{}, err
	}

	existing.Document = Normalize(doc)
	existing.SchemaVersion = SchemaVersion
	if jobDescription != "" {
		existing.JobDescription = jobDescription
	}
	existing.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, existing); err != nil {
		return Resume{}, err
	}
	return existing, nil
}

// Delete removes an owned resume and releases one quota unit.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id, userID); err != nil {
		return err
	}
	_, err := s.Usage.Release(ctx, userID, 1)
	return err
}

// ImportPDF creates a draft resume from an uploaded PDF: the extracted
// text lands in the summary for the owner to split into sections.
func (s *Service) ImportPDF(ctx context.Context, userID, plan, fileName string, data []byte) (Resume, error) {
	if len(data) == 0 {
		return Resume{}, ErrInvalidInput
	}
	text, err := extract.TextFromPDF(data)
	if err != nil {
		if errors.Is(err, extract.ErrNotPDF) {
			return Resume{}, ErrInvalidInput
		}
		return Resume{}, err
	}
	doc := Document{Summary: strings.TrimSpace(text)}
	if doc.PersonalInfo.Name == "" && fileName != "" {
		doc.PersonalInfo.Name = strings.TrimSuffix(fileName, ".pdf")
	}
	return s.Create(ctx, userID, plan, doc, "")
}
