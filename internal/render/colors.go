package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"tasklist/internal/domain"
)

// ANSI background colors for the single-space priority and urgency cells.
const (
	colorRed    = lipgloss.Color("1")
	colorGreen  = lipgloss.Color("2")
	colorYellow = lipgloss.Color("3")
	colorBlue   = lipgloss.Color("4")
)

// cellStyles holds the fixed symbol-to-color mapping. Styles are built from a
// renderer pinned to the ANSI profile so output is identical on and off a
// tty.
type cellStyles struct {
	priority map[domain.Priority]lipgloss.Style
	urgency  map[domain.Urgency]lipgloss.Style
}

func newCellStyles(w io.Writer) cellStyles {
	r := lipgloss.NewRenderer(w, termenv.WithProfile(termenv.ANSI))
	r.SetColorProfile(termenv.ANSI)
	bg := func(c lipgloss.Color) lipgloss.Style {
		return r.NewStyle().Background(c)
	}
	return cellStyles{
		priority: map[domain.Priority]lipgloss.Style{
			domain.PriorityCritical: bg(colorRed),
			domain.PriorityHigh:     bg(colorYellow),
			domain.PriorityNormal:   bg(colorGreen),
			domain.PriorityLow:      bg(colorBlue),
		},
		urgency: map[domain.Urgency]lipgloss.Style{
			domain.UrgencyInTime:  bg(colorGreen),
			domain.UrgencyDue:     bg(colorYellow),
			domain.UrgencyOverdue: bg(colorRed),
		},
	}
}

// priorityCell renders the colored single-space cell for a priority.
func (s cellStyles) priorityCell(p domain.Priority) string {
	return s.priority[p].Render(" ")
}

// urgencyCell renders the colored single-space cell for an urgency.
func (s cellStyles) urgencyCell(u domain.Urgency) string {
	return s.urgency[u].Render(" ")
}
