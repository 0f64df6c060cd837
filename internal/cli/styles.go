package cli

import "github.com/charmbracelet/lipgloss"

var styles = struct {
	title lipgloss.Style
	label lipgloss.Style
	ok    lipgloss.Style
	warn  lipgloss.Style
	bad   lipgloss.Style
	card  lipgloss.Style
}{
	title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("141")),
	label: lipgloss.NewStyle().Faint(true),
	ok:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	bad:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	card: lipgloss.NewStyle().
		Padding(0, 1).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")),
}
