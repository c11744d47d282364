// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// ForceQuit exits even while typing in the search box.
	ForceQuit key.Binding

	// Help toggles the full help.
	Help key.Binding

	// Back returns to the previous view.
	Back key.Binding

	// Focus switches between the search box and the results.
	Focus key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Select opens the selected record.
	Select key.Binding

	// NextPage shows the next page of results.
	NextPage key.Binding

	// PrevPage shows the previous page of results.
	PrevPage key.Binding

	// CycleStatus steps through the status filter values.
	CycleStatus key.Binding

	// CycleType steps through the document type filter values.
	CycleType key.Binding

	// CycleSort steps through the sort orders.
	CycleSort key.Binding

	// Reset clears every filter.
	Reset key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "focus"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("n", "right", "pgdown"),
			key.WithHelp("n", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("p", "left", "pgup"),
			key.WithHelp("p", "prev page"),
		),
		CycleStatus: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "status"),
		),
		CycleType: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "type"),
		),
		CycleSort: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "sort"),
		),
		Reset: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear filters"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the search box.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.ForceQuit}
}

// ResultsHelp returns keybindings for the result list.
func (k *KeyMap) ResultsHelp() []key.Binding {
	return []key.Binding{k.NextPage, k.PrevPage, k.CycleStatus, k.CycleType, k.CycleSort, k.Help, k.Quit}
}

// RecordHelp returns keybindings for the record view.
func (k *KeyMap) RecordHelp() []key.Binding {
	return []key.Binding{k.Back, k.Quit}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Focus, k.Up, k.Down, k.Select},
		{k.NextPage, k.PrevPage},
		{k.CycleStatus, k.CycleType, k.CycleSort, k.Reset},
		{k.Back, k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
