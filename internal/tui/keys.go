package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Toggle key.Binding
	Draft  key.Binding
	Clear  key.Binding
	Switch key.Binding
	Back   key.Binding
	Copy   key.Binding
	Export key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space/enter", "toggle player")),
		Draft:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "draft teams")),
		Clear:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear selection")),
		Switch: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch tab")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Copy:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy summary")),
		Export: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export draft")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) selectionHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Draft, k.Clear, k.Switch, k.Quit}
}

func (k keyMap) teamsHelp() []key.Binding {
	return []key.Binding{k.Draft, k.Copy, k.Export, k.Switch, k.Quit}
}
