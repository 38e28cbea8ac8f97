package resume

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNormalizeFillsDefaults(t *testing.T) {
	doc := Normalize(Document{})

	if doc.Experience == nil || doc.Education == nil || doc.Projects == nil || doc.Certifications == nil || doc.Skills == nil {
		t.Fatalf("expected all sections non-nil, got %+v", doc)
	}
	if doc.Template != DefaultTemplate {
		t.Fatalf("expected template %q, got %q", DefaultTemplate, doc.Template)
	}
	if doc.ColorScheme != DefaultColorScheme {
		t.Fatalf("expected colorScheme %q, got %q", DefaultColorScheme, doc.ColorScheme)
	}
}

func TestNormalizeAssignsMissingIDs(t *testing.T) {
	doc := Normalize(Document{
		Experience: []ExperienceItem{{Position: "Engineer"}},
		Skills:     []SkillGroup{{Category: "Tools"}},
	})

	if doc.Experience[0].ID == "" {
		t.Fatalf("expected experience item id to be assigned")
	}
	if doc.Skills[0].ID == "" {
		t.Fatalf("expected skill group id to be assigned")
	}
	if doc.Experience[0].Responsibilities == nil {
		t.Fatalf("expected responsibilities to be non-nil")
	}
}

func TestNormalizeMarshalsEmptySectionsAsArrays(t *testing.T) {
	data, err := json.Marshal(Normalize(Document{}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "null") {
		t.Fatalf("expected no null sections, got %s", data)
	}
}

func TestAddItemReturnsTargetableID(t *testing.T) {
	doc := Normalize(Document{})

	out, id := AddItem(doc, SectionExperience)
	if id == "" {
		t.Fatalf("expected new item id")
	}
	if len(out.Experience) != 1 {
		t.Fatalf("expected 1 experience item, got %d", len(out.Experience))
	}
	if out.Experience[0].ID != id {
		t.Fatalf("expected item id %q, got %q", id, out.Experience[0].ID)
	}
	if len(doc.Experience) != 0 {
		t.Fatalf("expected input document unchanged, got %d items", len(doc.Experience))
	}
}

func TestUpdateItemAfterAddFindsExactlyOneItem(t *testing.T) {
	doc := Normalize(Document{})
	doc, id := AddItem(doc, SectionExperience)
	doc, _ = AddItem(doc, SectionExperience)

	before := len(doc.Experience)
	patch := json.RawMessage(`{"position":"Staff Engineer","company":"Acme"}`)
	out := UpdateItem(doc, SectionExperience, id, patch)

	if len(out.Experience) != before {
		t.Fatalf("expected section length unchanged: before %d, after %d", before, len(out.Experience))
	}
	var matched int
	for _, item := range out.Experience {
		if item.Position == "Staff Engineer" {
			matched++
			if item.ID != id {
				t.Fatalf("expected id preserved, got %q", item.ID)
			}
		}
	}
	if matched != 1 {
		t.Fatalf("expected patch applied to exactly one item, got %d", matched)
	}
}

func TestUpdateItemUnknownIDIsNoOp(t *testing.T) {
	doc := Normalize(Document{})
	doc, _ = AddItem(doc, SectionProjects)

	out := UpdateItem(doc, SectionProjects, "missing", json.RawMessage(`{"name":"x"}`))
	if out.Projects[0].Name != "" {
		t.Fatalf("expected no-op, got %+v", out.Projects[0])
	}
}

func TestUpdateItemCannotOverwriteID(t *testing.T) {
	doc := Normalize(Document{})
	doc, id := AddItem(doc, SectionEducation)

	out := UpdateItem(doc, SectionEducation, id, json.RawMessage(`{"id":"evil","degree":"BSc"}`))
	if out.Education[0].ID != id {
		t.Fatalf("expected id %q preserved, got %q", id, out.Education[0].ID)
	}
	if out.Education[0].Degree != "BSc" {
		t.Fatalf("expected degree applied, got %q", out.Education[0].Degree)
	}
}

func TestRemoveItem(t *testing.T) {
	doc := Normalize(Document{})
	doc, first := AddItem(doc, SectionCertifications)
	doc, second := AddItem(doc, SectionCertifications)

	out := RemoveItem(doc, SectionCertifications, first)
	if len(out.Certifications) != 1 {
		t.Fatalf("expected 1 certification, got %d", len(out.Certifications))
	}
	if out.Certifications[0].ID != second {
		t.Fatalf("expected remaining id %q, got %q", second, out.Certifications[0].ID)
	}
	if len(doc.Certifications) != 2 {
		t.Fatalf("expected input unchanged, got %d", len(doc.Certifications))
	}

	// Removing an unknown id is a no-op.
	same := RemoveItem(out, SectionCertifications, "missing")
	if len(same.Certifications) != 1 {
		t.Fatalf("expected no-op removal, got %d items", len(same.Certifications))
	}
}

func TestUpdatePersonalInfoMergesOnlySetFields(t *testing.T) {
	doc := Normalize(Document{PersonalInfo: PersonalInfo{Name: "Ada", Email: "ada@example.com"}})

	name := "Ada Lovelace"
	out := UpdatePersonalInfo(doc, PersonalInfoPatch{Name: &name})

	if out.PersonalInfo.Name != "Ada Lovelace" {
		t.Fatalf("expected name updated, got %q", out.PersonalInfo.Name)
	}
	if out.PersonalInfo.Email != "ada@example.com" {
		t.Fatalf("expected email untouched, got %q", out.PersonalInfo.Email)
	}
	if doc.PersonalInfo.Name != "Ada" {
		t.Fatalf("expected input unchanged, got %q", doc.PersonalInfo.Name)
	}
}

func TestReplaceSkillsPreservesOrder(t *testing.T) {
	doc := Normalize(Document{})

	out := ReplaceSkills(doc, []SkillGroup{
		{Category: "Languages", Skills: []string{"Go", "SQL"}},
		{Category: "Tools", Skills: []string{"Docker"}},
	})

	if len(out.Skills) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(out.Skills))
	}
	if out.Skills[0].Category != "Languages" || out.Skills[1].Category != "Tools" {
		t.Fatalf("expected group order preserved, got %+v", out.Skills)
	}
	if out.Skills[0].Skills[0] != "Go" || out.Skills[0].Skills[1] != "SQL" {
		t.Fatalf("expected token order preserved, got %+v", out.Skills[0].Skills)
	}
	if out.Skills[0].ID == "" {
		t.Fatalf("expected group id assigned")
	}
}

func TestMutationsDoNotShareSlices(t *testing.T) {
	doc := Normalize(Document{
		Experience: []ExperienceItem{{ID: "e1", Responsibilities: []string{"ship"}}},
	})

	out := UpdateSummary(doc, "new summary")
	out.Experience[0].Responsibilities[0] = "changed"

	if doc.Experience[0].Responsibilities[0] != "ship" {
		t.Fatalf("expected input responsibilities untouched, got %q", doc.Experience[0].Responsibilities[0])
	}
}
