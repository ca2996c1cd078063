package errordialog

import (
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// scanView registers zones the way the app does before hit-testing clicks.
func scanView(m Model) string {
	return zone.Scan(m.Overlay(strings.Repeat(strings.Repeat(" ", 80)+"\n", 23) + strings.Repeat(" ", 80)))
}

// waitForZone re-renders until bubblezone's worker has registered id.
func waitForZone(t *testing.T, m Model, id string) *zone.ZoneInfo {
	t.Helper()
	var z *zone.ZoneInfo
	for retries := 0; retries < 20; retries++ {
		_ = scanView(m)
		z = zone.Get(id)
		if z != nil && !z.IsZero() {
			return z
		}
		time.Sleep(time.Millisecond)
	}
	require.FailNow(t, "zone never registered", id)
	return nil
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease}
}

func closedReason(t *testing.T, cmd tea.Cmd) CloseReason {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(ClosedMsg)
	require.True(t, ok, "expected ClosedMsg")
	return msg.Reason
}

func TestNew_IsClosed(t *testing.T) {
	m := New()
	require.Equal(t, Closed, m.State())
	require.False(t, m.IsOpen())
	require.Empty(t, m.Message())
	require.Empty(t, m.View())
}

func TestOpen_ShowsMessage(t *testing.T) {
	m := New().Open("Email already registered")
	require.True(t, m.IsOpen())
	require.Equal(t, "Email already registered", m.Message())

	view := ansi.Strip(m.View())
	require.Contains(t, view, Title)
	require.Contains(t, view, "Email already registered")
	require.Contains(t, view, "OK")
}

func TestOpen_WhileOpenReplacesMessage(t *testing.T) {
	m := New().Open("first").Open("second")
	require.True(t, m.IsOpen())
	require.Equal(t, "second", m.Message())
	require.NotContains(t, ansi.Strip(m.View()), "first")
}

func TestClose_RetainsMessage(t *testing.T) {
	m := New().Open("Service unavailable. Please try again later.").Close()
	require.Equal(t, Closed, m.State())
	require.Equal(t, "Service unavailable. Please try again later.", m.Message())
	require.Empty(t, m.View())
}

func TestView_WrapsLongMessages(t *testing.T) {
	long := strings.Repeat("word ", 40)
	m := New().SetSize(80, 24).Open(long)

	for _, line := range strings.Split(ansi.Strip(m.View()), "\n") {
		require.LessOrEqual(t, ansi.StringWidth(line), maxContentWidth+4)
	}
}

func TestUpdate_KeysClose(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		reason CloseReason
	}{
		{"enter acknowledges", tea.KeyMsg{Type: tea.KeyEnter}, Acknowledged},
		{"space acknowledges", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, Acknowledged},
		{"esc dismisses", tea.KeyMsg{Type: tea.KeyEsc}, Dismissed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, cmd := New().Open("x").Update(tt.msg)
			require.False(t, m.IsOpen())
			require.Equal(t, "x", m.Message())
			require.Equal(t, tt.reason, closedReason(t, cmd))
		})
	}
}

func TestUpdate_OtherKeysIgnored(t *testing.T) {
	m, cmd := New().Open("x").Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	require.True(t, m.IsOpen())
	require.Nil(t, cmd)
}

func TestUpdate_ClosedIgnoresInput(t *testing.T) {
	m, cmd := New().Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, m.IsOpen())
	require.Nil(t, cmd)
}

func TestUpdate_ClickOK(t *testing.T) {
	m := New().SetSize(80, 24).Open("Email already registered")
	z := waitForZone(t, m, zoneOKButton)

	m, cmd := m.Update(click(z.StartX+1, z.StartY))
	require.False(t, m.IsOpen())
	require.Equal(t, Acknowledged, closedReason(t, cmd))
}

func TestUpdate_ClickInsideBodyKeepsOpen(t *testing.T) {
	m := New().SetSize(80, 24).Open("Email already registered")
	z := waitForZone(t, m, zoneDialog)

	m, cmd := m.Update(click(z.StartX+1, z.StartY+1))
	require.True(t, m.IsOpen())
	require.Nil(t, cmd)
}

func TestUpdate_ClickOutsideDismisses(t *testing.T) {
	m := New().SetSize(80, 24).Open("Email already registered")
	z := waitForZone(t, m, zoneDialog)
	require.Greater(t, z.StartX, 0, "dialog should be centered, leaving room on the left")

	m, cmd := m.Update(click(0, 0))
	require.False(t, m.IsOpen())
	require.Equal(t, Dismissed, closedReason(t, cmd))
}

func TestUpdate_ClickBeforeZonesRegisteredKeepsOpen(t *testing.T) {
	zone.Clear(zoneDialog)
	zone.Clear(zoneOKButton)
	m := New().SetSize(80, 24).Open("Email already registered")

	m, cmd := m.Update(click(0, 0))
	require.True(t, m.IsOpen())
	require.Nil(t, cmd)
}

func TestUpdate_NonLeftClickIgnored(t *testing.T) {
	m := New().SetSize(80, 24).Open("x")
	m, cmd := m.Update(tea.MouseMsg{X: 0, Y: 0, Button: tea.MouseButtonRight, Action: tea.MouseActionRelease})
	require.True(t, m.IsOpen())
	require.Nil(t, cmd)
}

func TestOverlay_ClosedReturnsBackground(t *testing.T) {
	bg := "a\nb"
	require.Equal(t, bg, New().Overlay(bg))
}
