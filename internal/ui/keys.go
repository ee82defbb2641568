package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines key bindings for the timer screen.
type KeyMap struct {
	// Common
	Quit       key.Binding
	ToggleHelp key.Binding
	Suspend    key.Binding

	// Slider drag
	Decrease    key.Binding
	Increase    key.Binding
	DecreaseBig key.Binding
	IncreaseBig key.Binding
	Min         key.Binding
	Max         key.Binding
	Release     key.Binding
	Cancel      key.Binding
}

// DefaultKeys returns the default key bindings for the application.
func DefaultKeys() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Suspend: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("ctrl+z", "suspend"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("left", "h", "down", "j"),
			key.WithHelp("←/h", "-1 min"),
		),
		Increase: key.NewBinding(
			key.WithKeys("right", "l", "up", "k"),
			key.WithHelp("→/l", "+1 min"),
		),
		DecreaseBig: key.NewBinding(
			key.WithKeys("pgdown", "H"),
			key.WithHelp("pgdn/H", "-5 min"),
		),
		IncreaseBig: key.NewBinding(
			key.WithKeys("pgup", "L"),
			key.WithHelp("pgup/L", "+5 min"),
		),
		Min: key.NewBinding(
			key.WithKeys("home", "0"),
			key.WithHelp("home/0", "zero"),
		),
		Max: key.NewBinding(
			key.WithKeys("end", "$"),
			key.WithHelp("end/$", "max"),
		),
		Release: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// NewHelpModel returns a configured help model.
func NewHelpModel() help.Model {
	h := help.New()
	h.ShortSeparator = " • "
	return h
}

// stateKeyMap adapts bindings to the current UI state for contextual help.
type stateKeyMap struct {
	keys     KeyMap
	state    State
	tracking bool
}

// ForState returns a contextual key map implementing help.KeyMap.
func (k KeyMap) ForState(s State, tracking bool) help.KeyMap {
	return stateKeyMap{keys: k, state: s, tracking: tracking}
}

// ShortHelp implements help.KeyMap.
func (s stateKeyMap) ShortHelp() []key.Binding {
	switch {
	case s.tracking:
		return []key.Binding{s.keys.Decrease, s.keys.Increase, s.keys.Release, s.keys.Cancel}
	case s.state == StateRunning:
		return []key.Binding{s.keys.Decrease, s.keys.Increase, s.keys.ToggleHelp, s.keys.Quit}
	default:
		return []key.Binding{s.keys.Increase, s.keys.Decrease, s.keys.ToggleHelp, s.keys.Quit}
	}
}

// FullHelp implements help.KeyMap.
func (s stateKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{s.keys.Decrease, s.keys.Increase, s.keys.DecreaseBig, s.keys.IncreaseBig},
		{s.keys.Min, s.keys.Max, s.keys.Release, s.keys.Cancel},
		{s.keys.ToggleHelp, s.keys.Suspend, s.keys.Quit},
	}
}
