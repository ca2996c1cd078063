package styles

import "github.com/charmbracelet/x/ansi"

// Ellipsis marks text cut by Truncate.
const Ellipsis = "…"

// Truncate shortens s to at most width cells, ending it with Ellipsis when
// anything was cut. Escape sequences are preserved.
func Truncate(s string, width int) string {
	if width < 1 {
		return ""
	}
	return ansi.Truncate(s, width, Ellipsis)
}
