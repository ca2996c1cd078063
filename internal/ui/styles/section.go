package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FieldBox is a rounded box around a form input with its label set into
// the top edge:
//
//	╭─ Email ──────────╮
//	│ ada@example.com  │
//	╰──────────────────╯
type FieldBox struct {
	Label   string
	Width   int
	Focused bool
	Invalid bool
}

// Color is the edge color for the box's state. Invalid wins over focus.
func (f FieldBox) Color() lipgloss.TerminalColor {
	switch {
	case f.Invalid:
		return StatusErrorColor
	case f.Focused:
		return FormTextInputFocusedBorderColor
	}
	return BorderDefaultColor
}

// Render draws the box around lines, padding each to the inner width.
// Lines wider than the box are left as they are.
func (f FieldBox) Render(lines ...string) string {
	edge := lipgloss.NewStyle().Foreground(f.Color())
	b := lipgloss.RoundedBorder()
	inner := max(f.Width-2, 1)

	rows := make([]string, 0, len(lines)+2)
	rows = append(rows, f.top(b, edge, inner))
	for _, line := range lines {
		pad := strings.Repeat(" ", max(inner-lipgloss.Width(line), 0))
		rows = append(rows, edge.Render(b.Left)+line+pad+edge.Render(b.Right))
	}
	rows = append(rows, edge.Render(b.BottomLeft+strings.Repeat(b.Bottom, inner)+b.BottomRight))
	return strings.Join(rows, "\n")
}

func (f FieldBox) top(b lipgloss.Border, edge lipgloss.Style, inner int) string {
	if f.Label == "" {
		return edge.Render(b.TopLeft + strings.Repeat(b.Top, inner) + b.TopRight)
	}
	label := lipgloss.NewStyle().Bold(true).Foreground(f.Color()).Render(f.Label)
	// "─ " before the label and " " after it.
	fill := max(inner-lipgloss.Width(f.Label)-3, 0)
	return edge.Render(b.TopLeft+b.Top+" ") + label + edge.Render(" "+strings.Repeat(b.Top, fill)+b.TopRight)
}
