// Package app contains the root application model.
package app

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/signup/internal/form"
	"github.com/zjrosen/signup/internal/keys"
	"github.com/zjrosen/signup/internal/log"
	"github.com/zjrosen/signup/internal/registration"
	"github.com/zjrosen/signup/internal/router"
	"github.com/zjrosen/signup/internal/ui/landing"
	"github.com/zjrosen/signup/internal/ui/logview"
	"github.com/zjrosen/signup/internal/ui/signup"
	"github.com/zjrosen/signup/internal/ui/toaster"
)

// SuccessToast is shown on the landing screen after an account is created.
const SuccessToast = "Account created"

// Config holds the collaborators of the root model.
type Config struct {
	Router        *router.Router
	Coordinator   *registration.Coordinator
	Gate          form.Gate
	PasswordCheck form.PasswordCheck
	// Context is the parent of every submission. Defaults to Background.
	Context context.Context
	// Debug enables the log panel (ctrl+x).
	Debug bool
}

// Model is the root application state.
type Model struct {
	cfg   Config
	route string

	signup  signup.Model
	landing landing.Model

	// Toasts are owned by the app so they survive screen changes.
	toaster toaster.Model

	debugMode    bool
	logView      logview.Model
	logListenCmd tea.Cmd

	width  int
	height int
}

// New creates the root model showing the router's current route.
func New(cfg Config) Model {
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}
	if cfg.Router == nil {
		cfg.Router = router.New(router.PathRegister)
	}

	lv := logview.New()
	var listen tea.Cmd
	if cfg.Debug {
		listen = lv.StartListening()
	}

	m := Model{
		cfg:          cfg,
		route:        cfg.Router.Current(),
		landing:      landing.New(cfg.Router),
		toaster:      toaster.New(),
		debugMode:    cfg.Debug,
		logView:      lv,
		logListenCmd: listen,
	}
	m.signup = m.newSignup()
	return m
}

func (m Model) newSignup() signup.Model {
	return signup.New(signup.Config{
		Coordinator:   m.cfg.Coordinator,
		Navigator:     m.cfg.Router,
		Gate:          m.cfg.Gate,
		PasswordCheck: m.cfg.PasswordCheck,
		Context:       m.cfg.Context,
	}).SetSize(m.width, m.height)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.route == router.PathRegister {
		cmds = append(cmds, m.signup.Init())
	}
	if m.logListenCmd != nil {
		cmds = append(cmds, m.logListenCmd)
	}
	return tea.Batch(cmds...)
}

// Route returns the route currently shown.
func (m Model) Route() string {
	return m.route
}

// Signup returns the registration screen.
func (m Model) Signup() signup.Model {
	return m.signup
}

// Landing returns the landing screen.
func (m Model) Landing() landing.Model {
	return m.landing
}

// Toaster returns the toast state.
func (m Model) Toaster() toaster.Model {
	return m.toaster
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.signup = m.signup.SetSize(msg.Width, msg.Height)
		m.landing = m.landing.SetSize(msg.Width, msg.Height)
		m.logView.SetSize(msg.Width, msg.Height)
		return m, nil

	case log.LogEvent:
		var cmd tea.Cmd
		m.logView, cmd = m.logView.Update(msg)
		return m, cmd

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil

	case signup.RegisteredMsg:
		log.Info(log.CatUI, "Account created", "domain", log.EmailDomain(msg.Email))
		m.landing = m.landing.SetRegistered(msg.Email)
		var cmd tea.Cmd
		m.toaster, cmd = m.toaster.Show(SuccessToast, toaster.StyleSuccess, toaster.DefaultDuration)
		return m, cmd

	case signup.SubmitDoneMsg:
		// Outcomes always go to the form; stale ones are ignored there.
		var cmd tea.Cmd
		m.signup, cmd = m.signup.Update(msg)
		return m.syncRoute(cmd)

	case tea.MouseMsg:
		if m.logView.Visible() {
			return m, nil
		}

	case tea.KeyMsg:
		if m.debugMode && key.Matches(msg, keys.App.ToggleLogs) {
			m.logView.Toggle()
			return m, nil
		}
		if m.logView.Visible() {
			var cmd tea.Cmd
			m.logView, cmd = m.logView.Update(msg)
			return m, cmd
		}
		if key.Matches(msg, keys.App.Quit) {
			m.signup = m.signup.Teardown()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	switch m.route {
	case router.PathRegister:
		m.signup, cmd = m.signup.Update(msg)
	default:
		m.landing, cmd = m.landing.Update(msg)
	}
	return m.syncRoute(cmd)
}

// syncRoute follows navigation done by a screen. Leaving the form tears it
// down; entering it builds a fresh one.
func (m Model) syncRoute(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	current := m.cfg.Router.Current()
	if current == m.route {
		return m, cmd
	}

	log.Info(log.CatUI, "Route changed", "from", m.route, "to", current)
	if m.route == router.PathRegister {
		m.signup = m.signup.Teardown()
	}
	m.route = current
	if current == router.PathRegister {
		m.signup = m.newSignup()
		return m, tea.Batch(cmd, m.signup.Init())
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	var view string
	switch m.route {
	case router.PathRegister:
		view = m.signup.View()
	default:
		view = m.landing.View()
	}

	if m.toaster.Visible() {
		view = m.toaster.Overlay(view, m.width, m.height)
	}
	if m.debugMode && m.logView.Visible() {
		view = m.logView.Overlay(view)
	}
	return zone.Scan(view)
}

// Close releases resources held by the application.
func (m *Model) Close() error {
	m.logView.StopListening()
	m.signup = m.signup.Teardown()
	return nil
}
