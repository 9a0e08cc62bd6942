package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"talentiq/internal/review"
)

// Styles holds the lipgloss styles used when a report is colored.
type Styles struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Faint   lipgloss.Style
	Good    lipgloss.Style
	Fair    lipgloss.Style
	Poor    lipgloss.Style
	TipGood lipgloss.Style
	TipFix  lipgloss.Style
}

func newStyles(out io.Writer) Styles {
	re := lipgloss.NewRenderer(out)
	re.SetColorProfile(termenv.ANSI256)
	base := re.NewStyle()
	return Styles{
		Title:   base.Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		Header:  base.Bold(true),
		Faint:   base.Faint(true),
		Good:    base.Bold(true).Foreground(lipgloss.Color("#16A34A")),
		Fair:    base.Bold(true).Foreground(lipgloss.Color("#CA8A04")),
		Poor:    base.Bold(true).Foreground(lipgloss.Color("#DC2626")),
		TipGood: base.Foreground(lipgloss.Color("#22C55E")),
		TipFix:  base.Foreground(lipgloss.Color("#F59E0B")),
	}
}

func (s Styles) level(l review.Level) lipgloss.Style {
	switch l {
	case review.LevelGood:
		return s.Good
	case review.LevelFair:
		return s.Fair
	default:
		return s.Poor
	}
}
