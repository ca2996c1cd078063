// Package overlay draws dialogs and toasts on top of an already rendered
// screen without clearing it.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Position is where the foreground is anchored.
type Position int

const (
	// Center is used for modal content: the error dialog and the log panel.
	Center Position = iota
	// TopRight is used for toasts; Margin insets it from both edges.
	TopRight
)

// Config describes the screen the foreground is placed on.
type Config struct {
	Width    int
	Height   int
	Position Position
	// Margin is the inset, in cells, for TopRight.
	Margin int
}

// Place splices fg into bg. Styling in both is preserved; cells of bg
// outside the foreground's box stay visible. Foreground lines are cut at
// the right edge of the screen when Width is set.
func Place(cfg Config, fg, bg string) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")
	for len(bgLines) < cfg.Height {
		bgLines = append(bgLines, "")
	}

	x, y := origin(cfg, lipgloss.Width(fg), len(fgLines))
	for i, line := range fgLines {
		row := y + i
		if row >= len(bgLines) {
			break
		}
		if cfg.Width > 0 {
			line = ansi.Truncate(line, cfg.Width-x, "")
		}
		bgLines[row] = splice(bgLines[row], line, x)
	}
	return strings.Join(bgLines, "\n")
}

// splice writes fg over bg starting at column x.
func splice(bg, fg string, x int) string {
	left := ansi.Truncate(bg, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}

	end := x + ansi.StringWidth(fg)
	right := ""
	if end < ansi.StringWidth(bg) {
		right = ansi.TruncateLeft(bg, end, "")
	}
	return left + fg + right
}

// origin returns the top-left cell of the foreground, never negative.
func origin(cfg Config, w, h int) (x, y int) {
	switch cfg.Position {
	case TopRight:
		x = cfg.Width - w - cfg.Margin
		y = cfg.Margin
	default:
		x = (cfg.Width - w) / 2
		y = (cfg.Height - h) / 2
	}
	return max(x, 0), max(y, 0)
}
