package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used in text mode.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style

	// Group styles composite unit names, Member leaf unit names.
	Group  lipgloss.Style
	Member lipgloss.Style
	// Value styles aggregate values.
	Value lipgloss.Style
	// Branch styles tree connectors.
	Branch lipgloss.Style
}

// NewStyles creates styles bound to a lipgloss renderer, so colour support
// follows the renderer's output rather than the process stdout.
func NewStyles(lg *lipgloss.Renderer) *Styles {
	return &Styles{
		Header1: lg.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).MarginBottom(1),
		Header2: lg.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Bold:    lg.NewStyle().Bold(true),
		Muted:   lg.NewStyle().Foreground(lipgloss.Color("8")),
		Success: lg.NewStyle().Foreground(lipgloss.Color("10")),
		Error:   lg.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: lg.NewStyle().Foreground(lipgloss.Color("11")),
		Group:   lg.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
		Member:  lg.NewStyle(),
		Value:   lg.NewStyle().Foreground(lipgloss.Color("10")),
		Branch:  lg.NewStyle().Foreground(lipgloss.Color("8")),
	}
}
