package resume

import "time"

// PersonalInfo is the document header. Every field defaults to the empty
// string and is never absent, so rendering is a total function.
type PersonalInfo struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Portfolio string `json:"portfolio"`
}

// ExperienceItem is a single work-history entry.
type ExperienceItem struct {
	ID               string   `json:"id"`
	Position         string   `json:"position"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	Current          bool     `json:"current"`
	Responsibilities []string `json:"responsibilities"`
}

// EducationItem is a single education entry.
type EducationItem struct {
	ID          string `json:"id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	GPA         string `json:"gpa"`
}

// ProjectItem is a single project entry.
type ProjectItem struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Link         string   `json:"link"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// CertificationItem is a single certification entry.
type CertificationItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	Date         string `json:"date"`
	CredentialID string `json:"credentialId"`
}

// SkillGroup is a named, ordered group of skill tokens. Group order and
// token order are meaningful and preserved through render.
type SkillGroup struct {
	ID       string   `json:"id"`
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

// Document is the canonical structured resume. Item IDs are unique within
// the document only; they are stable across edits and used for point
// update/removal.
type Document struct {
	PersonalInfo   PersonalInfo        `json:"personalInfo"`
	Summary        string              `json:"summary"`
	Experience     []ExperienceItem    `json:"experience"`
	Education      []EducationItem     `json:"education"`
	Projects       []ProjectItem       `json:"projects"`
	Certifications []CertificationItem `json:"certifications"`
	Skills         []SkillGroup        `json:"skills"`
	Template       string              `json:"template"`
	ColorScheme    string              `json:"colorScheme"`
}

// Resume is a stored document row owned by exactly one user.
type Resume struct {
	ID             string
	UserID         string
	Document       Document
	SchemaVersion  int
	JobDescription string
	ATSScore       *int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Section names the list-valued parts of a Document that support
// item-level operations.
type Section string

const (
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionProjects       Section = "projects"
	SectionCertifications Section = "certifications"
	SectionSkills         Section = "skills"
)

const (
	DefaultTemplate    = "classic"
	DefaultColorScheme = "blue"
)
