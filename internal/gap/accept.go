package gap

import (
	"strings"

	"github.com/google/uuid"

	"resume-builder/internal/resume"
)

// canonicalGroup is the skills group accepted keywords land in when no
// existing group matches.
const canonicalGroup = "Technical Skills"

// AcceptKeyword merges an accepted keyword into the document's skills and
// drops it from the analysis snapshot. Both inputs are treated as
// immutable; the returned values are fresh copies.
//
// Merge rules: if the keyword already exists anywhere in skills it is not
// inserted again. Otherwise it is appended to the first group whose name
// matches the canonical technical-skills label, or a single new group is
// created when none matches.
func AcceptKeyword(doc resume.Document, analysis Analysis, keyword string) (resume.Document, Analysis) {
	keyword = strings.TrimSpace(keyword)
	out := dropKeyword(analysis, keyword)
	if keyword == "" || containsSkill(doc.Skills, keyword) {
		return resume.ReplaceSkills(doc, doc.Skills), out
	}

	groups := make([]resume.SkillGroup, len(doc.Skills))
	copy(groups, doc.Skills)

	idx := -1
	for i, g := range groups {
		if isCanonicalGroup(g.Category) {
			idx = i
			break
		}
	}
	if idx >= 0 {
		skills := make([]string, 0, len(groups[idx].Skills)+1)
		skills = append(skills, groups[idx].Skills...)
		groups[idx].Skills = append(skills, keyword)
	} else {
		groups = append(groups, resume.SkillGroup{
			ID:       uuid.NewString(),
			Category: canonicalGroup,
			Skills:   []string{keyword},
		})
	}
	return resume.ReplaceSkills(doc, groups), out
}

func isCanonicalGroup(category string) bool {
	c := strings.ToLower(strings.TrimSpace(category))
	return c == "technical skills" || c == "skills" || c == "general skills"
}

func containsSkill(groups []resume.SkillGroup, keyword string) bool {
	for _, g := range groups {
		for _, s := range g.Skills {
			if strings.EqualFold(strings.TrimSpace(s), keyword) {
				return true
			}
		}
	}
	return false
}

func dropKeyword(analysis Analysis, keyword string) Analysis {
	kept := make([]string, 0, len(analysis.MissingKeywords))
	for _, kw := range analysis.MissingKeywords {
		if !strings.EqualFold(kw, keyword) {
			kept = append(kept, kw)
		}
	}
	analysis.MissingKeywords = kept
	return analysis
}
