package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func TestFieldBox_Layout(t *testing.T) {
	out := ansi.Strip(FieldBox{Label: "Email", Width: 20}.Render(" ada@example.com"))
	lines := strings.Split(out, "\n")

	require.Equal(t, []string{
		"╭─ Email ──────────╮",
		"│ ada@example.com  │",
		"╰──────────────────╯",
	}, lines)
	for _, l := range lines {
		require.Equal(t, 20, lipgloss.Width(l))
	}
}

func TestFieldBox_NoLabel(t *testing.T) {
	out := ansi.Strip(FieldBox{Width: 6}.Render("ab"))
	require.Equal(t, "╭────╮\n│ab  │\n╰────╯", out)
}

func TestFieldBox_NoLines(t *testing.T) {
	out := ansi.Strip(FieldBox{Label: "Password", Width: 16}.Render())
	require.Len(t, strings.Split(out, "\n"), 2)
}

func TestFieldBox_LabelWiderThanBox(t *testing.T) {
	out := ansi.Strip(FieldBox{Label: "Confirm your password please", Width: 12}.Render("x"))
	top := strings.Split(out, "\n")[0]
	require.True(t, strings.HasPrefix(top, "╭─ Confirm"))
	require.True(t, strings.HasSuffix(top, " ╮"), "no fill left, the corner still closes the edge")
}

func TestFieldBox_Color(t *testing.T) {
	require.Equal(t, BorderDefaultColor, FieldBox{}.Color())
	require.Equal(t, FormTextInputFocusedBorderColor, FieldBox{Focused: true}.Color())
	require.Equal(t, StatusErrorColor, FieldBox{Invalid: true}.Color())
	require.Equal(t, StatusErrorColor, FieldBox{Focused: true, Invalid: true}.Color())
}

func TestFieldBox_StateChangesOutput(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI256)
	defer lipgloss.SetColorProfile(termenv.Ascii)

	idle := FieldBox{Label: "Email", Width: 20}
	focused := idle
	focused.Focused = true
	invalid := focused
	invalid.Invalid = true

	a, b, c := idle.Render("x"), focused.Render("x"), invalid.Render("x")
	require.NotEqual(t, a, b)
	require.NotEqual(t, b, c)
	require.Equal(t, ansi.Strip(a), ansi.Strip(c))
}
