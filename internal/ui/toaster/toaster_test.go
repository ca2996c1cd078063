package toaster

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m := New()
	assert.False(t, m.Visible())
	assert.Empty(t, m.View())
}

func TestShow(t *testing.T) {
	m, cmd := New().Show("Account created", StyleSuccess, time.Millisecond)
	assert.True(t, m.Visible())
	assert.Equal(t, "Account created", m.Message())
	require.NotNil(t, cmd)
}

func TestHide(t *testing.T) {
	m, _ := New().Show("Account created", StyleSuccess, time.Second)
	m = m.Hide()
	assert.False(t, m.Visible())
	assert.Empty(t, m.Message())
}

func TestUpdate_DismissesOwnToast(t *testing.T) {
	m, cmd := New().Show("Account created", StyleSuccess, time.Millisecond)

	msg := cmd()
	dismiss, ok := msg.(DismissMsg)
	require.True(t, ok, "scheduled command should emit DismissMsg")

	m = m.Update(dismiss)
	assert.False(t, m.Visible())
}

func TestUpdate_IgnoresStaleDismiss(t *testing.T) {
	m, first := New().Show("first", StyleInfo, time.Millisecond)
	m, _ = m.Show("second", StyleSuccess, time.Hour)

	m = m.Update(first())
	assert.True(t, m.Visible(), "dismissal of an earlier toast must not hide a newer one")
	assert.Equal(t, "second", m.Message())
}

func TestUpdate_IgnoresOtherMessages(t *testing.T) {
	m, _ := New().Show("x", StyleSuccess, time.Second)
	m = m.Update("unrelated")
	assert.True(t, m.Visible())
}

func TestView_Styles(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		glyph string
	}{
		{"success", StyleSuccess, "✓"},
		{"error", StyleError, "✗"},
		{"info", StyleInfo, "i "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := New().Show("hello", tt.style, time.Second)
			view := m.View()
			assert.Contains(t, view, tt.glyph)
			assert.Contains(t, view, "hello")
			assert.Contains(t, view, "╭", "toast is bordered")
		})
	}
}

func TestOverlay_NotVisibleReturnsBackground(t *testing.T) {
	bg := "line1\nline2\nline3"
	assert.Equal(t, bg, New().Overlay(bg, 20, 3))
}

func TestOverlay_VisiblePlacesTopRight(t *testing.T) {
	width, height := 40, 8
	bgLines := make([]string, height)
	for i := range bgLines {
		bgLines[i] = strings.Repeat(".", width)
	}
	bg := strings.Join(bgLines, "\n")

	m, _ := New().Show("Saved", StyleSuccess, time.Second)
	result := m.Overlay(bg, width, height)
	lines := strings.Split(result, "\n")

	assert.Equal(t, bgLines[0], lines[0], "the margin keeps the first row clear")
	assert.Contains(t, lines[2], "Saved")
	assert.True(t, strings.HasSuffix(lines[2], "."), "the margin keeps one background column on the right")
	assert.True(t, strings.HasPrefix(lines[2], "...."), "toast sits on the right")
}
