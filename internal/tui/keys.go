package tui

import "github.com/charmbracelet/bubbles/key"

type listKeyMap struct {
	Open         key.Binding
	New          key.Binding
	FocusFilter  key.Binding
	ToggleFilter key.Binding
	Up           key.Binding
	Down         key.Binding
	Quit         key.Binding
}

func defaultListKeys() listKeyMap {
	return listKeyMap{
		Open:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		New:          key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new item")),
		FocusFilter:  key.NewBinding(key.WithKeys("/", "tab"), key.WithHelp("/", "edit filter")),
		ToggleFilter: key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "filter on/off")),
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k listKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.New, k.FocusFilter, k.ToggleFilter, k.Quit}
}

func (k listKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Open}, {k.New, k.FocusFilter, k.ToggleFilter, k.Quit}}
}

type detailKeyMap struct {
	Submit key.Binding
	Delete key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func defaultDetailKeys() detailKeyMap {
	return detailKeyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Delete: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete this item")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k detailKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Delete, k.Back}
}

func (k detailKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Submit, k.Delete, k.Back, k.Quit}}
}
