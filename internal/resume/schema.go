package resume

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// SchemaVersion is the canonical document schema. Earlier iterations of the
// product stored two incompatible shapes (v1: fullName/city/role/duration
// prose fields with flat string skills; v2: flat tagged skills); both are
// migrated forward at the persistence boundary so the rest of the code only
// ever sees v3.
const SchemaVersion = 3

const documentSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "personalInfo": {
      "type": "object",
      "properties": {
        "name": {"type": "string"},
        "email": {"type": "string"},
        "phone": {"type": "string"},
        "location": {"type": "string"},
        "linkedin": {"type": "string"},
        "github": {"type": "string"},
        "portfolio": {"type": "string"}
      },
      "additionalProperties": false
    },
    "summary": {"type": "string"},
    "experience": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "id": {"type": "string"},
          "position": {"type": "string"},
          "company": {"type": "string"},
          "location": {"type": "string"},
          "startDate": {"type": "string"},
          "endDate": {"type": "string"},
          "current": {"type": "boolean"},
          "responsibilities": {"type": "array", "items": {"type": "string"}}
        },
        "additionalProperties": false
      }
    },
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "id": {"type": "string"},
          "degree": {"type": "string"},
          "institution": {"type": "string"},
          "location": {"type": "string"},
          "startDate": {"type": "string"},
          "endDate": {"type": "string"},
          "gpa": {"type": "string"}
        },
        "additionalProperties": false
      }
    },
    "projects": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "id": {"type": "string"},
          "name": {"type": "string"},
          "link": {"type": "string"},
          "description": {"type": "string"},
          "technologies": {"type": "array", "items": {"type": "string"}}
        },
        "additionalProperties": false
      }
    },
    "certifications": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "id": {"type": "string"},
          "name": {"type": "string"},
          "issuer": {"type": "string"},
          "date": {"type": "string"},
          "credentialId": {"type": "string"}
        },
        "additionalProperties": false
      }
    },
    "skills": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "id": {"type": "string"},
          "category": {"type": "string"},
          "skills": {"type": "array", "items": {"type": "string"}}
        },
        "additionalProperties": false
      }
    },
    "template": {"type": "string"},
    "colorScheme": {"type": "string"}
  },
  "additionalProperties": false
}`

var documentSchema = gojsonschema.NewStringLoader(documentSchemaJSON)

// ValidateDocument checks an incoming canonical (v3) document payload
// against the embedded JSON Schema. Violations are reported as
// ErrInvalidInput with a per-field detail list.
func ValidateDocument(raw json.RawMessage) error {
	if len(raw) == 0 {
		return fmt.Errorf("%w: empty document", ErrInvalidInput)
	}
	result, err := gojsonschema.Validate(documentSchema, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(details, "; "))
	}
	return nil
}

// DecodeDocument parses and validates a canonical document payload and
// returns it normalized.
func DecodeDocument(raw json.RawMessage) (Document, error) {
	if err := ValidateDocument(raw); err != nil {
		return Document{}, err
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	return Normalize(doc), nil
}

// DecodeStored parses a stored document at the given schema version,
// migrating legacy shapes forward to v3.
func DecodeStored(raw []byte, version int) (Document, error) {
	switch version {
	case 1:
		var legacy documentV1
		if err := json.Unmarshal(raw, &legacy); err != nil {
			return Document{}, fmt.Errorf("decode stored v1 document: %w", err)
		}
		return Normalize(migrateV1(legacy)), nil
	case 2:
		var legacy documentV2
		if err := json.Unmarshal(raw, &legacy); err != nil {
			return Document{}, fmt.Errorf("decode stored v2 document: %w", err)
		}
		return Normalize(migrateV2(legacy)), nil
	case 0, SchemaVersion:
		var doc Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			return Document{}, fmt.Errorf("decode stored document: %w", err)
		}
		return Normalize(doc), nil
	default:
		return Document{}, fmt.Errorf("unknown document schema version %d", version)
	}
}

// documentV1 is the earliest stored shape: prose date ranges, single
// description strings and a flat skill list.
type documentV1 struct {
	PersonalInfo struct {
		FullName string `json:"fullName"`
		Role     string `json:"role"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		LinkedIn string `json:"linkedin"`
		GitHub   string `json:"github"`
		City     string `json:"city"`
	} `json:"personalInfo"`
	Summary    string `json:"summary"`
	Experience []struct {
		ID       string `json:"id"`
		Company  string `json:"company"`
		Role     string `json:"role"`
		Duration string `json:"duration"`
		Desc     string `json:"desc"`
	} `json:"experience"`
	Education []struct {
		ID     string `json:"id"`
		School string `json:"school"`
		Degree string `json:"degree"`
		Year   string `json:"year"`
		Score  string `json:"score"`
	} `json:"education"`
	Skills   []string `json:"skills"`
	Projects []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Link string `json:"link"`
		Desc string `json:"desc"`
	} `json:"projects"`
	Certificates []struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Issuer string `json:"issuer"`
		Date   string `json:"date"`
	} `json:"certificates"`
	Template    string `json:"template"`
	ColorScheme string `json:"colorScheme"`
}

// documentV2 matches v3 except skills were flat tagged entries.
type documentV2 struct {
	PersonalInfo   PersonalInfo        `json:"personalInfo"`
	Summary        string              `json:"summary"`
	Experience     []ExperienceItem    `json:"experience"`
	Education      []EducationItem     `json:"education"`
	Projects       []ProjectItem       `json:"projects"`
	Certifications []CertificationItem `json:"certifications"`
	Skills         []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"skills"`
	Template    string `json:"template"`
	ColorScheme string `json:"colorScheme"`
}

func migrateV1(legacy documentV1) Document {
	doc := Document{
		PersonalInfo: PersonalInfo{
			Name:     legacy.PersonalInfo.FullName,
			Email:    legacy.PersonalInfo.Email,
			Phone:    legacy.PersonalInfo.Phone,
			Location: legacy.PersonalInfo.City,
			LinkedIn: legacy.PersonalInfo.LinkedIn,
			GitHub:   legacy.PersonalInfo.GitHub,
		},
		Summary:     legacy.Summary,
		Template:    legacy.Template,
		ColorScheme: legacy.ColorScheme,
	}
	for _, exp := range legacy.Experience {
		item := ExperienceItem{
			ID:        exp.ID,
			Position:  exp.Role,
			Company:   exp.Company,
			StartDate: exp.Duration,
		}
		if exp.Desc != "" {
			item.Responsibilities = []string{exp.Desc}
		}
		doc.Experience = append(doc.Experience, item)
	}
	for _, edu := range legacy.Education {
		doc.Education = append(doc.Education, EducationItem{
			ID:          edu.ID,
			Degree:      edu.Degree,
			Institution: edu.School,
			EndDate:     edu.Year,
			GPA:         edu.Score,
		})
	}
	for _, proj := range legacy.Projects {
		doc.Projects = append(doc.Projects, ProjectItem{
			ID:          proj.ID,
			Name:        proj.Name,
			Link:        proj.Link,
			Description: proj.Desc,
		})
	}
	for _, cert := range legacy.Certificates {
		doc.Certifications = append(doc.Certifications, CertificationItem{
			ID:     cert.ID,
			Name:   cert.Name,
			Issuer: cert.Issuer,
			Date:   cert.Date,
		})
	}
	if len(legacy.Skills) > 0 {
		doc.Skills = []SkillGroup{{
			Category: "Technical Skills",
			Skills:   append([]string{}, legacy.Skills...),
		}}
	}
	return doc
}

func migrateV2(legacy documentV2) Document {
	doc := Document{
		PersonalInfo:   legacy.PersonalInfo,
		Summary:        legacy.Summary,
		Experience:     legacy.Experience,
		Education:      legacy.Education,
		Projects:       legacy.Projects,
		Certifications: legacy.Certifications,
		Template:       legacy.Template,
		ColorScheme:    legacy.ColorScheme,
	}
	if len(legacy.Skills) > 0 {
		group := SkillGroup{Category: "Technical Skills"}
		for _, s := range legacy.Skills {
			if s.Name != "" {
				group.Skills = append(group.Skills, s.Name)
			}
		}
		doc.Skills = []SkillGroup{group}
	}
	return doc
}
