// Package landing is the screen at the root route: the sign-in entry point
// users land on after registering.
package landing

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/signup/internal/keys"
	"github.com/zjrosen/signup/internal/registration"
	"github.com/zjrosen/signup/internal/router"
	"github.com/zjrosen/signup/internal/ui/styles"
)

const zoneRegister = "landing-register"

// Model is the landing screen.
type Model struct {
	nav        registration.Navigator
	registered string
	help       help.Model
	width      int
	height     int
}

// New creates the landing screen.
func New(nav registration.Navigator) Model {
	return Model{nav: nav, help: help.New()}
}

// SetSize updates the viewport dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	m.help.Width = width
	return m
}

// SetRegistered records the address of the account just created.
func (m Model) SetRegistered(email string) Model {
	m.registered = email
	return m
}

// Registered returns the address set by SetRegistered.
func (m Model) Registered() string {
	return m.registered
}

// Update handles input on the landing screen.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Landing.Register):
			return m.register()
		case key.Matches(msg, keys.Landing.Quit):
			return m, tea.Quit
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if z := zone.Get(zoneRegister); z != nil && z.InBounds(msg) {
			return m.register()
		}
	}
	return m, nil
}

func (m Model) register() (Model, tea.Cmd) {
	if m.nav != nil {
		m.nav.NavigateTo(router.PathRegister)
	}
	return m, nil
}

// View renders the landing screen.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Sign In"))
	b.WriteString("\n\n")
	if m.registered != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(styles.StatusSuccessColor).
			Render("Account created for " + m.registered + "."))
		b.WriteString("\n")
	}
	b.WriteString(styles.HintStyle.Render("Sign in with your email and password to continue."))
	b.WriteString("\n\n")
	b.WriteString(styles.HintStyle.Render("Don't have an account? "))
	b.WriteString(zone.Mark(zoneRegister, styles.LinkStyle.Render("Create one")))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(keys.Landing))

	page := lipgloss.NewStyle().Padding(1, 2).Render(b.String())
	if m.width > 0 && m.height > 0 {
		page = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, page)
	}
	return page
}
