// Package errordialog renders the modal shown when a registration attempt
// fails. It has two states, Closed and Open; closing keeps the last message.
package errordialog

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/signup/internal/keys"
	"github.com/zjrosen/signup/internal/log"
	"github.com/zjrosen/signup/internal/ui/overlay"
	"github.com/zjrosen/signup/internal/ui/styles"
)

// Title is the dialog heading.
const Title = "Issue While Registering"

const (
	zoneOKButton = "errordialog-ok"
	zoneDialog   = "errordialog-box"

	maxContentWidth = 48
	minContentWidth = 20
)

// State is the visibility of the dialog.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// CloseReason records how the dialog was closed.
type CloseReason int

const (
	// Acknowledged means the user pressed OK (or Enter/Space).
	Acknowledged CloseReason = iota
	// Dismissed means Esc or a click outside the dialog.
	Dismissed
)

// ClosedMsg is emitted when the user closes the dialog.
type ClosedMsg struct {
	Reason CloseReason
}

// Model is the error dialog state.
type Model struct {
	state   State
	message string
	width   int
	height  int
}

// New returns a closed dialog.
func New() Model {
	return Model{}
}

// Open shows msg. Opening an already open dialog replaces the message.
func (m Model) Open(msg string) Model {
	m.state = Open
	m.message = msg
	log.Debug(log.CatUI, "Error dialog opened", "message", msg)
	return m
}

// Close hides the dialog; Message still returns the last message.
func (m Model) Close() Model {
	m.state = Closed
	return m
}

// State returns the current state.
func (m Model) State() State {
	return m.state
}

// IsOpen reports whether the dialog is visible.
func (m Model) IsOpen() bool {
	return m.state == Open
}

// Message returns the most recent message, even after Close.
func (m Model) Message() string {
	return m.message
}

// SetSize records the viewport size used for centering.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// Update handles acknowledgement and dismissal while open.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.state != Open {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Dialog.Confirm):
			return m.closeWith(Acknowledged)
		case key.Matches(msg, keys.Dialog.Dismiss):
			return m.closeWith(Dismissed)
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if z := zone.Get(zoneOKButton); z != nil && z.InBounds(msg) {
			return m.closeWith(Acknowledged)
		}
		// Before the first scan there is no zone to test against.
		if z := zone.Get(zoneDialog); z != nil && !z.InBounds(msg) {
			return m.closeWith(Dismissed)
		}
	}
	return m, nil
}

func (m Model) closeWith(reason CloseReason) (Model, tea.Cmd) {
	m = m.Close()
	return m, func() tea.Msg { return ClosedMsg{Reason: reason} }
}

func (m Model) contentWidth() int {
	w := maxContentWidth
	if m.width > 0 {
		w = min(w, m.width-6) // border + padding
	}
	return max(w, minContentWidth)
}

// View renders the dialog box, or "" when closed.
func (m Model) View() string {
	if m.state != Open {
		return ""
	}

	contentWidth := m.contentWidth()
	boxWidth := contentWidth + 2

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.StatusErrorColor).
		PaddingLeft(1)
	divider := lipgloss.NewStyle().
		Foreground(styles.OverlayBorderColor).
		Render(strings.Repeat("─", boxWidth))

	msgStyle := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor)
	body := msgStyle.Render(wordwrap.String(m.message, contentWidth))

	okBtn := zone.Mark(zoneOKButton, styles.PrimaryButtonFocusedStyle.Render("OK"))
	buttons := lipgloss.PlaceHorizontal(contentWidth, lipgloss.Right, okBtn)

	var result strings.Builder
	result.WriteString(titleStyle.Render(Title))
	result.WriteString("\n")
	result.WriteString(divider)
	result.WriteString("\n")
	result.WriteString(lipgloss.NewStyle().Padding(1, 1).Render(body + "\n\n" + buttons))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.StatusErrorColor).
		Width(boxWidth).
		Render(result.String())

	return zone.Mark(zoneDialog, box)
}

// Overlay renders the dialog centered over bg, or bg when closed.
func (m Model) Overlay(bg string) string {
	if m.state != Open {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.View(), bg)
}
