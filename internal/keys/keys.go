// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// FormKeyMap holds the bindings active on the registration form.
type FormKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Press  key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp implements help.KeyMap.
func (k FormKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k FormKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Press, k.Submit},
		{k.Back, k.Quit},
	}
}

// DialogKeyMap holds the bindings of the error dialog.
type DialogKeyMap struct {
	Confirm key.Binding
	Dismiss key.Binding
}

// LandingKeyMap holds the bindings of the sign-in landing screen.
type LandingKeyMap struct {
	Register key.Binding
	Quit     key.Binding
}

// ShortHelp implements help.KeyMap.
func (k LandingKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Register, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k LandingKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Register, k.Quit}}
}

// Form is the registration form keymap.
var Form = FormKeyMap{
	Next: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab", "previous field"),
	),
	// Enter on an input moves focus; on a button or link it activates it.
	Press: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "sign up"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "sign in instead"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// Dialog is the error dialog keymap.
var Dialog = DialogKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "ok"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
}

// Landing is the sign-in landing keymap.
var Landing = LandingKeyMap{
	Register: key.NewBinding(
		key.WithKeys("r", "enter"),
		key.WithHelp("r", "create an account"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// AppKeyMap holds bindings handled by the root model on every screen.
type AppKeyMap struct {
	ToggleLogs key.Binding
	Quit       key.Binding
}

// App is the global keymap. ToggleLogs is only honored in debug mode.
var App = AppKeyMap{
	ToggleLogs: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("ctrl+x", "toggle logs"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}
