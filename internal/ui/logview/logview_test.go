package logview

import (
	"bytes"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/signup/internal/log"
)

func event(entry string) log.LogEvent {
	return log.LogEvent{Payload: entry}
}

func sized() Model {
	m := New()
	m.SetSize(100, 40)
	return m
}

func TestUpdate_AccumulatesWhileHidden(t *testing.T) {
	m := sized()
	m, _ = m.Update(event("2026-01-01T10:00:00 [INFO] [submit] Submission started id=a\n"))
	m, _ = m.Update(event("2026-01-01T10:00:01 [DEBUG] [form] Field edited\n"))

	require.False(t, m.Visible())
	require.Equal(t, []string{
		"2026-01-01T10:00:00 [INFO] [submit] Submission started id=a",
		"2026-01-01T10:00:01 [DEBUG] [form] Field edited",
	}, m.Entries())
}

func TestUpdate_CapsRetainedEntries(t *testing.T) {
	m := sized()
	for i := range MaxEntries + 10 {
		m, _ = m.Update(event(fmt.Sprintf("[INFO] [ui] entry %d", i)))
	}
	entries := m.Entries()
	require.Len(t, entries, MaxEntries)
	require.Equal(t, "[INFO] [ui] entry 10", entries[0])
}

func TestUpdate_LevelFilter(t *testing.T) {
	m := sized()
	m, _ = m.Update(event("[DEBUG] [form] a"))
	m, _ = m.Update(event("[WARN] [submit] b"))
	m, _ = m.Update(event("[ERROR] [http] c"))
	m.Toggle()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}})
	require.Equal(t, log.LevelWarn, m.MinLevel())
	require.Equal(t, []string{"[WARN] [submit] b", "[ERROR] [http] c"}, m.Entries())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	require.Empty(t, m.Entries())
}

func TestUpdate_KeysIgnoredWhileHidden(t *testing.T) {
	m := sized()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	require.Equal(t, log.LevelDebug, m.MinLevel())
}

func TestUpdate_EscCloses(t *testing.T) {
	m := sized()
	m.Toggle()
	require.True(t, m.Visible())

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, m.Visible())
	require.NotNil(t, cmd)
	_, ok := cmd().(CloseMsg)
	require.True(t, ok)
}

func TestView_ShowsEntries(t *testing.T) {
	m := sized()
	require.Empty(t, m.View())

	m.Toggle()
	require.Contains(t, ansi.Strip(m.View()), "No logs to display")

	m, _ = m.Update(event("[INFO] [submit] Registration succeeded"))
	view := ansi.Strip(m.View())
	require.Contains(t, view, "Logs")
	require.Contains(t, view, "Registration succeeded")
	require.Contains(t, view, "[e] Error")
}

func TestStartListening_ReceivesLoggerEntries(t *testing.T) {
	var buf bytes.Buffer
	log.InitWriter(&buf)
	t.Cleanup(log.Reset)

	m := sized()
	cmd := m.StartListening()
	require.NotNil(t, cmd)
	defer m.StopListening()

	log.Warn(log.CatSubmit, "Registration rejected", "status", 409)

	m, next := m.Update(cmd())
	require.NotNil(t, next, "keeps listening after an event")
	require.Len(t, m.Entries(), 1)
	require.Contains(t, m.Entries()[0], "[WARN] [submit] Registration rejected status=409")
}

func TestStartListening_NoLogger(t *testing.T) {
	log.Reset()
	m := New()
	require.Nil(t, m.StartListening())
}
