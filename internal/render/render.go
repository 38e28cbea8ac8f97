package render

import (
	"bytes"
	"html/template"
	"strings"

	"resume-builder/internal/resume"
)

// Variant names the closed set of layout strategies.
const (
	VariantClassic = "classic"
	VariantModern  = "modern"
)

// presentLabel is the fixed end marker for ongoing positions.
const presentLabel = "Present"

var tmpl = template.Must(template.New("resume").Funcs(template.FuncMap{
	"dateRange": dateRange,
	"join":      strings.Join,
	"stripURL":  stripURL,
	"css":       func(s string) template.CSS { return template.CSS(s) },
}).Parse(classicHTML + modernHTML))

type renderData struct {
	Doc     resume.Document
	Palette Palette
}

// Render maps a document and a variant name to a standalone HTML page.
// It is a pure function: identical inputs yield byte-identical markup.
// Unknown variants fall back to classic.
func Render(doc resume.Document, variant string) (string, error) {
	name := VariantClassic
	if variant == VariantModern {
		name = VariantModern
	}
	data := renderData{
		Doc:     doc,
		Palette: PaletteFor(doc.ColorScheme),
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// dateRange formats a start/end pair, substituting the Present sentinel
// when the position is ongoing.
func dateRange(start, end string, current bool) string {
	if current {
		end = presentLabel
	}
	switch {
	case start == "" && end == "":
		return ""
	case start == "":
		return end
	case end == "":
		return start
	}
	return start + " - " + end
}

// stripURL trims scheme and www prefix so links print compactly.
func stripURL(s string) string {
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	return strings.TrimPrefix(s, "www.")
}
