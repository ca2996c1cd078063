// Package toaster shows short-lived notices in the corner of the screen.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/signup/internal/ui/overlay"
	"github.com/zjrosen/signup/internal/ui/styles"
)

// DefaultDuration is how long a notice stays up.
const DefaultDuration = 3 * time.Second

// Style picks the icon and border color.
type Style int

const (
	StyleSuccess Style = iota
	StyleError
	StyleInfo
)

func (s Style) icon() string {
	switch s {
	case StyleError:
		return "✗"
	case StyleInfo:
		return "i"
	}
	return "✓"
}

func (s Style) color() lipgloss.TerminalColor {
	switch s {
	case StyleError:
		return styles.ToastBorderErrorColor
	case StyleInfo:
		return styles.ToastBorderInfoColor
	}
	return styles.ToastBorderSuccessColor
}

// DismissMsg hides the notice numbered Seq. Messages for older notices
// are ignored.
type DismissMsg struct {
	Seq int
}

// Model holds at most one notice.
type Model struct {
	message string
	style   Style
	seq     int
}

func New() Model {
	return Model{}
}

// Show replaces any current notice and returns the command that dismisses
// it after d.
func (m Model) Show(message string, style Style, d time.Duration) (Model, tea.Cmd) {
	m.seq++
	m.message = message
	m.style = style
	seq := m.seq
	return m, tea.Tick(d, func(time.Time) tea.Msg { return DismissMsg{Seq: seq} })
}

func (m Model) Hide() Model {
	m.message = ""
	return m
}

func (m Model) Visible() bool   { return m.message != "" }
func (m Model) Message() string { return m.message }

func (m Model) Update(msg tea.Msg) Model {
	if d, ok := msg.(DismissMsg); ok && d.Seq == m.seq {
		return m.Hide()
	}
	return m
}

func (m Model) View() string {
	if !m.Visible() {
		return ""
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.style.color()).
		Padding(0, 1).
		Render(m.style.icon() + " " + m.message)
}

// Overlay draws the notice over the top-right corner of bg.
func (m Model) Overlay(bg string, width, height int) string {
	if !m.Visible() {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    width,
		Height:   height,
		Position: overlay.TopRight,
		Margin:   1,
	}, m.View(), bg)
}
