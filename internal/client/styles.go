package client

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title    lipgloss.Style
	ok       lipgloss.Style
	failed   lipgloss.Style
	endpoint lipgloss.Style
	output   lipgloss.Style
	help     lipgloss.Style
	summary  lipgloss.Style
}

// newStyles binds the styles to out so color is dropped when out is not a
// terminal.
func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		title:    r.NewStyle().Bold(true).Underline(true),
		ok:       r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		failed:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		endpoint: r.NewStyle().Foreground(lipgloss.Color("12")),
		output:   r.NewStyle().PaddingLeft(4),
		help:     r.NewStyle().Faint(true),
		summary:  r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}
