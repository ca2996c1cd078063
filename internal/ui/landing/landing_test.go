package landing

import (
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/signup/internal/registration"
	"github.com/zjrosen/signup/internal/router"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func recorder() (registration.Navigator, *[]string) {
	var paths []string
	return registration.NavigatorFunc(func(p string) { paths = append(paths, p) }), &paths
}

func TestUpdate_RegisterKeyNavigates(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'r'}},
		{Type: tea.KeyEnter},
	} {
		nav, paths := recorder()
		m := New(nav)
		_, cmd := m.Update(msg)
		require.Nil(t, cmd)
		require.Equal(t, []string{router.PathRegister}, *paths)
	}
}

func TestUpdate_QuitKey(t *testing.T) {
	nav, paths := recorder()
	_, cmd := New(nav).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	require.True(t, ok)
	require.Empty(t, *paths)
}

func TestUpdate_ClickCreateLink(t *testing.T) {
	nav, paths := recorder()
	m := New(nav).SetSize(80, 24)

	var z *zone.ZoneInfo
	for range 20 {
		_ = zone.Scan(m.View())
		if z = zone.Get(zoneRegister); z != nil && !z.IsZero() {
			break
		}
		time.Sleep(time.Millisecond)
	}
	require.NotNil(t, z)
	require.False(t, z.IsZero())

	m.Update(tea.MouseMsg{X: z.StartX, Y: z.StartY, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	require.Empty(t, *paths, "press alone does not activate")

	m.Update(tea.MouseMsg{X: z.StartX, Y: z.StartY, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	require.Equal(t, []string{router.PathRegister}, *paths)
}

func TestView_ShowsRegisteredAccount(t *testing.T) {
	m := New(nil)
	view := ansi.Strip(zone.Scan(m.View()))
	require.Contains(t, view, "Sign In")
	require.Contains(t, view, "Create one")
	require.NotContains(t, view, "Account created")

	m = m.SetRegistered("ada@example.com")
	require.Equal(t, "ada@example.com", m.Registered())
	require.Contains(t, ansi.Strip(zone.Scan(m.View())), "Account created for ada@example.com.")
}
