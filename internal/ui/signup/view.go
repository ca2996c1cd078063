package signup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/signup/internal/keys"
	"github.com/zjrosen/signup/internal/ui/styles"
	"github.com/zjrosen/signup/internal/validate"
)

const (
	defaultSectionWidth = 52
	signInPrompt        = "Already have an account? "
	signInLabel         = "Sign in"
)

func (m Model) sectionWidth() int {
	if m.width <= 0 {
		return defaultSectionWidth
	}
	return max(min(defaultSectionWidth, m.width-4), 16)
}

// View renders the form, with the error dialog on top when open.
func (m Model) View() string {
	width := m.sectionWidth()

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Sign Up"))
	b.WriteString("\n\n")

	for i, kind := range validate.Kinds {
		b.WriteString(m.renderField(i, kind, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderSubmit())
	b.WriteString("\n\n")
	b.WriteString(m.renderSignIn())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(keys.Form))

	page := lipgloss.NewStyle().Padding(1, 2).Render(b.String())
	if m.width > 0 && m.height > 0 {
		page = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, page)
	}
	return m.dialog.Overlay(page)
}

// renderField draws one bordered input and, when it should be shown, the
// helper text below it. A blank line is reserved otherwise so the layout
// does not jump.
func (m Model) renderField(i int, kind validate.Kind, width int) string {
	showError := m.state.ShowError(kind)
	section := styles.FieldBox{
		Label:   kind.Label(),
		Width:   width,
		Focused: m.focus == i,
		Invalid: showError,
	}.Render(" " + m.inputs[i].View())

	helper := ""
	if showError {
		helper = styles.HelperTextStyle.Render(" " + validate.HelperText(kind))
	}
	return zone.Mark(inputZoneID(kind), section) + "\n" + helper
}

func (m Model) renderSubmit() string {
	style := styles.PrimaryButtonStyle
	switch {
	case !m.SubmitEnabled():
		style = styles.DisabledButtonStyle
	case m.focus == focusSubmit:
		style = styles.PrimaryButtonFocusedStyle
	}
	btn := zone.Mark(zoneSubmit, style.Render("Sign Up"))

	if m.submitting {
		btn += "  " + m.spinner.View() + styles.HintStyle.Render(" Registering...")
	}
	return btn
}

func (m Model) renderSignIn() string {
	style := styles.LinkStyle
	if m.focus == focusSignIn {
		style = styles.LinkFocusedStyle
	}
	return styles.HintStyle.Render(signInPrompt) + zone.Mark(zoneSignIn, style.Render(signInLabel))
}
