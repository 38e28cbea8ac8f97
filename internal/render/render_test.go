package render

import (
	"strings"
	"testing"

	"resume-builder/internal/resume"
)

func sampleDocument() resume.Document {
	return resume.Document{
		PersonalInfo: resume.PersonalInfo{
			Name:     "Ada Lovelace",
			Email:    "ada@example.com",
			Location: "London",
			GitHub:   "https://www.github.com/ada",
		},
		Summary: "Analytical engine programmer.",
		Experience: []resume.ExperienceItem{
			{
				ID:               "e1",
				Position:         "Analyst",
				Company:          "Babbage & Co",
				StartDate:        "1840",
				Current:          true,
				Responsibilities: []string{"Wrote the first published program."},
			},
			{
				ID:        "e2",
				Position:  "Translator",
				Company:   "Menabrea",
				StartDate: "1842",
				EndDate:   "1843",
			},
		},
		Skills: []resume.SkillGroup{
			{ID: "s1", Category: "Mathematics", Skills: []string{"Calculus", "Number Theory"}},
		},
		Template:    "classic",
		ColorScheme: "blue",
	}
}

func TestRenderIsPure(t *testing.T) {
	doc := sampleDocument()
	for _, variant := range []string{VariantClassic, VariantModern} {
		first, err := Render(doc, variant)
		if err != nil {
			t.Fatalf("render %s: %v", variant, err)
		}
		second, err := Render(doc, variant)
		if err != nil {
			t.Fatalf("render %s: %v", variant, err)
		}
		if first != second {
			t.Fatalf("variant %s: expected byte-identical markup on repeat render", variant)
		}
	}
}

func TestRenderOmitsEmptySections(t *testing.T) {
	doc := resume.Document{
		PersonalInfo: resume.PersonalInfo{Name: "Ada"},
		Summary:      "Short summary.",
	}
	for _, variant := range []string{VariantClassic, VariantModern} {
		html, err := Render(doc, variant)
		if err != nil {
			t.Fatalf("render %s: %v", variant, err)
		}
		for _, header := range []string{"Experience", "Education", "Projects", "Certifications", "Skills"} {
			if strings.Contains(html, ">"+header+"<") {
				t.Fatalf("variant %s: expected no %s header for empty section", variant, header)
			}
		}
	}
}

func TestRenderCurrentPositionUsesPresentSentinel(t *testing.T) {
	html, err := Render(sampleDocument(), VariantClassic)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, "1840 - Present") {
		t.Fatalf("expected Present sentinel for current position, got:\n%s", html)
	}
	if !strings.Contains(html, "1842 - 1843") {
		t.Fatalf("expected literal end date for finished position")
	}
}

func TestRenderPreservesStoredOrder(t *testing.T) {
	html, err := Render(sampleDocument(), VariantModern)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	analyst := strings.Index(html, "Analyst")
	translator := strings.Index(html, "Translator")
	if analyst < 0 || translator < 0 || analyst > translator {
		t.Fatalf("expected stored experience order preserved (analyst=%d translator=%d)", analyst, translator)
	}
	calc := strings.Index(html, "Calculus")
	numTheory := strings.Index(html, "Number Theory")
	if calc < 0 || numTheory < 0 || calc > numTheory {
		t.Fatalf("expected skill token order preserved")
	}
}

func TestRenderEscapesUserText(t *testing.T) {
	doc := resume.Document{
		PersonalInfo: resume.PersonalInfo{Name: `<script>alert("x")</script>`},
	}
	html, err := Render(doc, VariantClassic)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(html, "<script>alert") {
		t.Fatalf("expected user text escaped, got raw script tag")
	}
}

func TestRenderUnknownVariantFallsBackToClassic(t *testing.T) {
	doc := sampleDocument()
	fallback, err := Render(doc, "brutalist")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	classic, err := Render(doc, VariantClassic)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if fallback != classic {
		t.Fatalf("expected unknown variant to render the classic layout")
	}
}

func TestRenderPinsPaletteColors(t *testing.T) {
	doc := sampleDocument()
	doc.ColorScheme = "emerald"
	html, err := Render(doc, VariantModern)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, "#047857") {
		t.Fatalf("expected explicit emerald accent hex in markup")
	}
	if strings.Contains(html, "oklch") {
		t.Fatalf("expected no modern color functions in print markup")
	}
}

func TestPaletteForUnknownSchemeFallsBack(t *testing.T) {
	if got := PaletteFor("neon"); got != palettes[DefaultColorScheme] {
		t.Fatalf("expected default palette for unknown scheme, got %+v", got)
	}
}
