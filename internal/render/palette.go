package render

// Palette pins every color to an explicit hex value. Markup handed to the
// print engine must never rely on inherited or modern color-function
// values (oklch and friends render as silent defects in headless Chrome).
type Palette struct {
	Accent    string
	AccentSub string
	Heading   string
	Body      string
	Muted     string
	Rule      string
	Sidebar   string
}

const DefaultColorScheme = "blue"

var palettes = map[string]Palette{
	"blue": {
		Accent:    "#1d4ed8",
		AccentSub: "#1e40af",
		Heading:   "#111827",
		Body:      "#1f2937",
		Muted:     "#6b7280",
		Rule:      "#111827",
		Sidebar:   "#eff6ff",
	},
	"emerald": {
		Accent:    "#047857",
		AccentSub: "#065f46",
		Heading:   "#111827",
		Body:      "#1f2937",
		Muted:     "#6b7280",
		Rule:      "#111827",
		Sidebar:   "#ecfdf5",
	},
	"purple": {
		Accent:    "#7c3aed",
		AccentSub: "#6d28d9",
		Heading:   "#111827",
		Body:      "#1f2937",
		Muted:     "#6b7280",
		Rule:      "#111827",
		Sidebar:   "#f5f3ff",
	},
	"rose": {
		Accent:    "#be123c",
		AccentSub: "#9f1239",
		Heading:   "#111827",
		Body:      "#1f2937",
		Muted:     "#6b7280",
		Rule:      "#111827",
		Sidebar:   "#fff1f2",
	},
	"slate": {
		Accent:    "#334155",
		AccentSub: "#1e293b",
		Heading:   "#0f172a",
		Body:      "#1f2937",
		Muted:     "#64748b",
		Rule:      "#0f172a",
		Sidebar:   "#f1f5f9",
	},
}

// PaletteFor resolves a color scheme name, falling back to the default
// palette for unknown names.
func PaletteFor(scheme string) Palette {
	if p, ok := palettes[scheme]; ok {
		return p
	}
	return palettes[DefaultColorScheme]
}
