package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func screen(w, h int, fill string) string {
	rows := make([]string, h)
	for i := range rows {
		rows[i] = strings.Repeat(fill, w)
	}
	return strings.Join(rows, "\n")
}

func TestPlace_Center(t *testing.T) {
	out := Place(Config{Width: 10, Height: 5, Position: Center}, "ab\ncd", screen(10, 5, "."))

	require.Equal(t, []string{
		"..........",
		"....ab....",
		"....cd....",
		"..........",
		"..........",
	}, strings.Split(out, "\n"))
}

func TestPlace_TopRightWithMargin(t *testing.T) {
	out := Place(Config{Width: 10, Height: 4, Position: TopRight, Margin: 1}, "OK", screen(10, 4, "."))

	require.Equal(t, []string{
		"..........",
		".......OK.",
		"..........",
		"..........",
	}, strings.Split(out, "\n"))
}

func TestPlace_ShortBackgroundIsPadded(t *testing.T) {
	out := Place(Config{Width: 6, Height: 3, Position: Center}, "xx", "ab")

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "ab", lines[0])
	require.Equal(t, "  xx", lines[1])
	require.Equal(t, "", lines[2])
}

func TestPlace_ForegroundLargerThanScreen(t *testing.T) {
	out := Place(Config{Width: 4, Height: 2, Position: Center}, "abcdef\nghijkl\nmnopqr", screen(4, 2, "."))

	require.Equal(t, []string{"abcd", "ghij"}, strings.Split(out, "\n"))
}

func TestPlace_PreservesStyledBackground(t *testing.T) {
	red := lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	bg := red.Render("left") + "    " + red.Render("right")

	out := Place(Config{Width: 13, Height: 1, Position: Center}, "[]", bg)

	require.Equal(t, "left [] right", ansi.Strip(out))
}

func TestPlace_WideRunes(t *testing.T) {
	out := Place(Config{Width: 8, Height: 1, Position: Center}, "✓ 日", screen(8, 1, "."))
	require.Equal(t, 8, ansi.StringWidth(out))
	require.Contains(t, out, "✓ 日")
}

func TestOrigin_ClampsToScreen(t *testing.T) {
	x, y := origin(Config{Width: 5, Height: 2, Position: Center}, 9, 4)
	require.Zero(t, x)
	require.Zero(t, y)

	x, y = origin(Config{Width: 5, Height: 2, Position: TopRight, Margin: 3}, 4, 1)
	require.Zero(t, x)
	require.Equal(t, 3, y)
}
