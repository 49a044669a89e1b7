package tui

import "github.com/charmbracelet/lipgloss"

// Styles collects the lipgloss styles used by the browser UI.
type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Selected lipgloss.Style
	Normal   lipgloss.Style
	Label    lipgloss.Style
	Faint    lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).MarginBottom(1),
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Normal:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Faint:    lipgloss.NewStyle().Faint(true),
		Success:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		Error:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		Help:     lipgloss.NewStyle().Faint(true).MarginTop(1),
	}
}
