// Package signup implements the account registration screen: four inputs
// with inline validation, a Sign Up button gated by the configured policy,
// and the error dialog for failed attempts.
package signup

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/signup/internal/form"
	"github.com/zjrosen/signup/internal/keys"
	"github.com/zjrosen/signup/internal/log"
	"github.com/zjrosen/signup/internal/registration"
	"github.com/zjrosen/signup/internal/ui/errordialog"
	"github.com/zjrosen/signup/internal/ui/styles"
	"github.com/zjrosen/signup/internal/validate"
)

// Focus order: the inputs in validate.Kinds order, then the button and link.
const inputCount = 4

const (
	focusSubmit = inputCount + iota
	focusSignIn
	focusCount
)

const (
	zoneSubmit = "signup-submit"
	zoneSignIn = "signup-signin"
)

func inputZoneID(kind validate.Kind) string {
	return fmt.Sprintf("signup-input-%s", kind)
}

// SubmitDoneMsg carries the outcome of a submission back to the Update loop.
type SubmitDoneMsg struct {
	Outcome registration.Outcome
}

// RegisteredMsg is emitted after a successful registration has navigated away.
type RegisteredMsg struct {
	Email string
}

// Config wires the screen to its collaborators.
type Config struct {
	Coordinator   *registration.Coordinator
	Navigator     registration.Navigator
	Gate          form.Gate
	PasswordCheck form.PasswordCheck
	// Context is the parent of every submission; defaults to Background.
	Context context.Context
}

// Model is the registration screen state.
type Model struct {
	cfg        Config
	state      form.State
	inputs     []textinput.Model
	focus      int
	submitting bool
	dialog     errordialog.Model
	spinner    spinner.Model
	help       help.Model
	width      int
	height     int
}

// New builds a fresh form with the first input focused.
func New(cfg Config) Model {
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}

	inputs := make([]textinput.Model, len(validate.Kinds))
	for i, kind := range validate.Kinds {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = kind.Label()
		ti.CharLimit = 254
		ti.Width = 36
		ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(styles.TextPlaceholderColor)
		if kind == validate.Password {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		inputs[i] = ti
	}
	inputs[0].Focus()

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(styles.SpinnerColor)),
	)

	return Model{
		cfg:     cfg,
		state:   form.New(cfg.PasswordCheck),
		inputs:  inputs,
		dialog:  errordialog.New(),
		spinner: sp,
		help:    help.New(),
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize updates the viewport dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	m.dialog = m.dialog.SetSize(width, height)
	m.help.Width = width
	inputWidth := max(min(m.sectionWidth()-4, 48), 8)
	for i := range m.inputs {
		m.inputs[i].Width = inputWidth
	}
	return m
}

// State returns the current form state.
func (m Model) State() form.State {
	return m.state
}

// Dialog returns the error dialog.
func (m Model) Dialog() errordialog.Model {
	return m.dialog
}

// Submitting reports whether a submission is in flight.
func (m Model) Submitting() bool {
	return m.submitting
}

// SubmitEnabled reports whether Sign Up can be activated.
func (m Model) SubmitEnabled() bool {
	return m.cfg.Gate.IsEnabled(m.state) && !m.submitting
}

// Teardown cancels any in-flight submission; its outcome will be ignored.
func (m Model) Teardown() Model {
	if m.cfg.Coordinator != nil {
		m.cfg.Coordinator.Cancel()
	}
	m.submitting = false
	return m
}

// Update handles messages for the registration screen.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil

	case SubmitDoneMsg:
		return m.handleOutcome(msg.Outcome)

	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case errordialog.ClosedMsg:
		return m.setFocus(m.inputIndex())
	}

	// The dialog is modal: while open it receives all input.
	if m.dialog.IsOpen() {
		switch msg.(type) {
		case tea.KeyMsg, tea.MouseMsg:
			var cmd tea.Cmd
			m.dialog, cmd = m.dialog.Update(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	if m.focus < len(m.inputs) {
		return m.updateInput(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Form.Next):
		return m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, keys.Form.Prev):
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	case key.Matches(msg, keys.Form.Submit):
		return m.submit()
	case key.Matches(msg, keys.Form.Back):
		return m.signIn()
	case key.Matches(msg, keys.Form.Press):
		switch m.focus {
		case focusSubmit:
			return m.submit()
		case focusSignIn:
			return m.signIn()
		default:
			return m.setFocus(m.focus + 1)
		}
	}

	if m.focus == focusSubmit && msg.Type == tea.KeySpace {
		return m.submit()
	}
	if m.focus < len(m.inputs) {
		return m.updateInput(msg)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	for i, kind := range validate.Kinds {
		if z := zone.Get(inputZoneID(kind)); z != nil && z.InBounds(msg) {
			return m.setFocus(i)
		}
	}
	if z := zone.Get(zoneSubmit); z != nil && z.InBounds(msg) {
		m, _ = m.setFocus(focusSubmit)
		return m.submit()
	}
	if z := zone.Get(zoneSignIn); z != nil && z.InBounds(msg) {
		return m.signIn()
	}
	return m, nil
}

// updateInput forwards msg to the focused input and feeds any value change
// through the form reducer.
func (m Model) updateInput(msg tea.Msg) (Model, tea.Cmd) {
	i := m.focus
	var cmd tea.Cmd
	m.inputs[i], cmd = m.inputs[i].Update(msg)

	kind := validate.Kinds[i]
	if v := m.inputs[i].Value(); v != m.state.Field(kind).Value {
		m.state = m.state.Apply(form.Edit{Field: kind, Value: v})
		log.Debug(log.CatForm, "Field edited", "field", kind, "valid", m.state.Field(kind).Valid)
	}
	return m, cmd
}

func (m Model) setFocus(target int) (Model, tea.Cmd) {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = target
	if target < len(m.inputs) {
		return m, m.inputs[target].Focus()
	}
	return m, nil
}

// inputIndex is the input to refocus after the dialog closes.
func (m Model) inputIndex() int {
	if m.focus < len(m.inputs) {
		return m.focus
	}
	return 0
}

func (m Model) submit() (Model, tea.Cmd) {
	if !m.SubmitEnabled() {
		log.Debug(log.CatForm, "Submit ignored", "submitting", m.submitting, "policy", m.cfg.Gate.Policy)
		return m, nil
	}

	sub := m.cfg.Coordinator.Begin(m.cfg.Context, m.state)
	m.submitting = true
	await := func() tea.Msg {
		return SubmitDoneMsg{Outcome: sub.Await()}
	}
	return m, tea.Batch(m.spinner.Tick, await)
}

func (m Model) handleOutcome(o registration.Outcome) (Model, tea.Cmd) {
	res := m.cfg.Coordinator.Resolve(o)
	m.submitting = m.cfg.Coordinator.InFlight()

	switch res.Action {
	case registration.ActionShowError:
		m.dialog = m.dialog.Open(res.Message)
		if m.focus < len(m.inputs) {
			m.inputs[m.focus].Blur()
		}
	case registration.ActionNavigate:
		email := res.Email
		return m, func() tea.Msg { return RegisteredMsg{Email: email} }
	}
	return m, nil
}

func (m Model) signIn() (Model, tea.Cmd) {
	m = m.Teardown()
	if m.cfg.Navigator != nil {
		m.cfg.Navigator.NavigateTo(registration.RootPath)
	}
	return m, nil
}
