package resume

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// The store operations are pure: each takes a Document by value, returns a
// new Document, and never mutates slices shared with the input. Auto-save
// diffing and concurrent reads depend on that.

// Normalize fills every default so downstream consumers never see nil
// slices or an unset template. Partial documents are normalized at
// creation, never represented with missing deep fields.
func Normalize(doc Document) Document {
	out := clone(doc)
	if out.Experience == nil {
		out.Experience = []ExperienceItem{}
	}
	if out.Education == nil {
		out.Education = []EducationItem{}
	}
	if out.Projects == nil {
		out.Projects = []ProjectItem{}
	}
	if out.Certifications == nil {
		out.Certifications = []CertificationItem{}
	}
	if out.Skills == nil {
		out.Skills = []SkillGroup{}
	}
	for i := range out.Experience {
		if out.Experience[i].Responsibilities == nil {
			out.Experience[i].Responsibilities = []string{}
		}
		if out.Experience[i].ID == "" {
			out.Experience[i].ID = uuid.NewString()
		}
	}
	for i := range out.Education {
		if out.Education[i].ID == "" {
			out.Education[i].ID = uuid.NewString()
		}
	}
	for i := range out.Projects {
		if out.Projects[i].Technologies == nil {
			out.Projects[i].Technologies = []string{}
		}
		if out.Projects[i].ID == "" {
			out.Projects[i].ID = uuid.NewString()
		}
	}
	for i := range out.Certifications {
		if out.Certifications[i].ID == "" {
			out.Certifications[i].ID = uuid.NewString()
		}
	}
	for i := range out.Skills {
		if out.Skills[i].Skills == nil {
			out.Skills[i].Skills = []string{}
		}
		if out.Skills[i].ID == "" {
			out.Skills[i].ID = uuid.NewString()
		}
	}
	if out.Template == "" {
		out.Template = DefaultTemplate
	}
	if out.ColorScheme == "" {
		out.ColorScheme = DefaultColorScheme
	}
	return out
}

// PersonalInfoPatch carries the fields to merge; nil means "leave as is".
type PersonalInfoPatch struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Location  *string `json:"location"`
	LinkedIn  *string `json:"linkedin"`
	GitHub    *string `json:"github"`
	Portfolio *string `json:"portfolio"`
}

// UpdatePersonalInfo shallow-merges the patch into personalInfo.
func UpdatePersonalInfo(doc Document, patch PersonalInfoPatch) Document {
	out := clone(doc)
	if patch.Name != nil {
		out.PersonalInfo.Name = *patch.Name
	}
	if patch.Email != nil {
		out.PersonalInfo.Email = *patch.Email
	}
	if patch.Phone != nil {
		out.PersonalInfo.Phone = *patch.Phone
	}
	if patch.Location != nil {
		out.PersonalInfo.Location = *patch.Location
	}
	if patch.LinkedIn != nil {
		out.PersonalInfo.LinkedIn = *patch.LinkedIn
	}
	if patch.GitHub != nil {
		out.PersonalInfo.GitHub = *patch.GitHub
	}
	if patch.Portfolio != nil {
		out.PersonalInfo.Portfolio = *patch.Portfolio
	}
	return out
}

// UpdateSummary replaces the summary text.
func UpdateSummary(doc Document, text string) Document {
	out := clone(doc)
	out.Summary = text
	return out
}

// AddItem appends a new default-shaped item with a fresh locally-unique id
// to the named section and returns the id so callers can target it
// immediately. An unknown section is a programming error.
func AddItem(doc Document, section Section) (Document, string) {
	out := clone(doc)
	id := uuid.NewString()
	switch section {
	case SectionExperience:
		out.Experience = append(out.Experience, ExperienceItem{ID: id, Responsibilities: []string{}})
	case SectionEducation:
		out.Education = append(out.Education, EducationItem{ID: id})
	case SectionProjects:
		out.Projects = append(out.Projects, ProjectItem{ID: id, Technologies: []string{}})
	case SectionCertifications:
		out.Certifications = append(out.Certifications, CertificationItem{ID: id})
	case SectionSkills:
		out.Skills = append(out.Skills, SkillGroup{ID: id, Skills: []string{}})
	default:
		panic(fmt.Sprintf("resume: unknown section %q", section))
	}
	return out, id
}

// UpdateItem merges the JSON patch into the single item whose id matches.
// A missing id is a no-op, not an error: edits must tolerate stale client
// state. The patch may set any subset of the item's fields; the id itself
// is never overwritten.
func UpdateItem(doc Document, section Section, id string, patch json.RawMessage) Document {
	out := clone(doc)
	switch section {
	case SectionExperience:
		for i := range out.Experience {
			if out.Experience[i].ID == id {
				item := out.Experience[i]
				if json.Unmarshal(patch, &item) == nil {
					item.ID = id
					out.Experience[i] = item
				}
			}
		}
	case SectionEducation:
		for i := range out.Education {
			if out.Education[i].ID == id {
				item := out.Education[i]
				if json.Unmarshal(patch, &item) == nil {
					item.ID = id
					out.Education[i] = item
				}
			}
		}
	case SectionProjects:
		for i := range out.Projects {
			if out.Projects[i].ID == id {
				item := out.Projects[i]
				if json.Unmarshal(patch, &item) == nil {
					item.ID = id
					out.Projects[i] = item
				}
			}
		}
	case SectionCertifications:
		for i := range out.Certifications {
			if out.Certifications[i].ID == id {
				item := out.Certifications[i]
				if json.Unmarshal(patch, &item) == nil {
					item.ID = id
					out.Certifications[i] = item
				}
			}
		}
	case SectionSkills:
		for i := range out.Skills {
			if out.Skills[i].ID == id {
				item := out.Skills[i]
				if json.Unmarshal(patch, &item) == nil {
					item.ID = id
					out.Skills[i] = item
				}
			}
		}
	default:
		panic(fmt.Sprintf("resume: unknown section %q", section))
	}
	return out
}

// RemoveItem filters out the item whose id matches. A missing id is a no-op.
func RemoveItem(doc Document, section Section, id string) Document {
	out := clone(doc)
	switch section {
	case SectionExperience:
		kept := out.Experience[:0:0]
		for _, item := range out.Experience {
			if item.ID != id {
				kept = append(kept, item)
			}
		}
		out.Experience = kept
	case SectionEducation:
		kept := out.Education[:0:0]
		for _, item := range out.Education {
			if item.ID != id {
				kept = append(kept, item)
			}
		}
		out.Education = kept
	case SectionProjects:
		kept := out.Projects[:0:0]
		for _, item := range out.Projects {
			if item.ID != id {
				kept = append(kept, item)
			}
		}
		out.Projects = kept
	case SectionCertifications:
		kept := out.Certifications[:0:0]
		for _, item := range out.Certifications {
			if item.ID != id {
				kept = append(kept, item)
			}
		}
		out.Certifications = kept
	case SectionSkills:
		kept := out.Skills[:0:0]
		for _, item := range out.Skills {
			if item.ID != id {
				kept = append(kept, item)
			}
		}
		out.Skills = kept
	default:
		panic(fmt.Sprintf("resume: unknown section %q", section))
	}
	return out
}

// ReplaceSkills swaps the whole skills section, preserving the given group
// order and inner token order.
func ReplaceSkills(doc Document, groups []SkillGroup) Document {
	out := clone(doc)
	replaced := make([]SkillGroup, 0, len(groups))
	for _, g := range groups {
		if g.ID == "" {
			g.ID = uuid.NewString()
		}
		g.Skills = append([]string{}, g.Skills...)
		replaced = append(replaced, g)
	}
	out.Skills = replaced
	return out
}

func clone(doc Document) Document {
	out := doc
	out.Experience = make([]ExperienceItem, len(doc.Experience))
	for i, item := range doc.Experience {
		item.Responsibilities = append([]string{}, item.Responsibilities...)
		out.Experience[i] = item
	}
	out.Education = make([]EducationItem, len(doc.Education))
	copy(out.Education, doc.Education)
	out.Projects = make([]ProjectItem, len(doc.Projects))
	for i, item := range doc.Projects {
		item.Technologies = append([]string{}, item.Technologies...)
		out.Projects[i] = item
	}
	out.Certifications = make([]CertificationItem, len(doc.Certifications))
	copy(out.Certifications, doc.Certifications)
	out.Skills = make([]SkillGroup, len(doc.Skills))
	for i, group := range doc.Skills {
		group.Skills = append([]string{}, group.Skills...)
		out.Skills[i] = group
	}
	return out
}
