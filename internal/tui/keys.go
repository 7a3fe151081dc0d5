package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Start      key.Binding
	Reset      key.Binding
	Mode       key.Binding
	Longer     key.Binding
	Shorter    key.Binding
	Custom     key.Binding
	Submit     key.Binding
	Cancel     key.Binding
	DeleteWord key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Start:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
		Reset:      key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
		Mode:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "mode")),
		Longer:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "longer")),
		Shorter:    key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "shorter")),
		Custom:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "custom text")),
		Submit:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "use text")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		DeleteWord: key.NewBinding(key.WithKeys("ctrl+w", "alt+backspace"), key.WithHelp("ctrl+w", "delete word")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Mode, k.Custom, k.Reset, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Reset, k.Quit},
		{k.Mode, k.Longer, k.Shorter},
		{k.Custom, k.Submit, k.Cancel},
		{k.DeleteWord, k.Help},
	}
}
