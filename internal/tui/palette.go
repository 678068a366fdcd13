package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorInk       = lipgloss.Color("#E5E9F0")
	ColorDim       = lipgloss.Color("#7A8291")
	ColorAccent    = lipgloss.Color("#88C0D0")
	ColorAccentAlt = lipgloss.Color("#81A1C1")
	ColorSuccess   = lipgloss.Color("#A3BE8C")
	ColorWarn      = lipgloss.Color("#EBCB8B")
	ColorBase      = lipgloss.Color("#2E3440")
	ColorTarget    = lipgloss.Color("#5E81AC")
	ColorError     = lipgloss.Color("#BF616A")
)

// Styles are bound to one renderer so color detection follows the writer
// they are printed to.
type Styles struct {
	Label   lipgloss.Style
	Dim     lipgloss.Style
	Title   lipgloss.Style
	Value   lipgloss.Style
	Match   lipgloss.Style
	Target  lipgloss.Style
	Arrow   lipgloss.Style
	Warning lipgloss.Style
}

func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Label:   r.NewStyle().Foreground(ColorInk),
		Dim:     r.NewStyle().Foreground(ColorDim),
		Title:   r.NewStyle().Bold(true).Foreground(ColorAccent),
		Value:   r.NewStyle().Bold(true).Foreground(ColorInk),
		Match:   r.NewStyle().Bold(true).Foreground(ColorBase).Background(ColorSuccess),
		Target:  r.NewStyle().Bold(true).Foreground(ColorError).Background(ColorTarget),
		Arrow:   r.NewStyle().Foreground(ColorAccentAlt),
		Warning: r.NewStyle().Foreground(ColorWarn),
	}
}
