package resume

import (
	"encoding/json"
	"time"
)

// CreateRequest is the payload for creating a resume. The document is
// optional; an absent document creates an empty draft.
type CreateRequest struct {
	Document       json.RawMessage `json:"document"`
	JobDescription string          `json:"jobDescription"`
}

// UpdateRequest replaces the stored document wholesale.
type UpdateRequest struct {
	Document       json.RawMessage `json:"document"`
	JobDescription string          `json:"jobDescription"`
}

// Response is the wire shape of a resume.
type Response struct {
	ResumeID       string    `json:"resumeId"`
	Document       Document  `json:"document"`
	SchemaVersion  int       `json:"schemaVersion"`
	JobDescription string    `json:"jobDescription,omitempty"`
	ATSScore       *int      `json:"atsScore,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ListItem is the trimmed shape used in list responses.
type ListItem struct {
	ResumeID  string    `json:"resumeId"`
	Name      string    `json:"name"`
	Template  string    `json:"template"`
	ATSScore  *int      `json:"atsScore,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toResponse(r Resume) Response {
	return Response{
		ResumeID:       r.ID,
		Document:       r.Document,
		SchemaVersion:  r.SchemaVersion,
		JobDescription: r.JobDescription,
		ATSScore:       r.ATSScore,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func toListItem(r Resume) ListItem {
	return ListItem{
		ResumeID:  r.ID,
		Name:      r.Document.PersonalInfo.Name,
		Template:  r.Document.Template,
		ATSScore:  r.ATSScore,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
