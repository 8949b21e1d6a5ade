package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the dashboard key bindings
type keyMap struct {
	Search    key.Binding
	Members   key.Binding
	Claims    key.Binding
	Schemes   key.Binding
	Providers key.Binding
	Home      key.Binding
	Reload    key.Binding
	ClearFlt  key.Binding
	Up        key.Binding
	Down      key.Binding
	Filter    key.Binding
	Choose    key.Binding
	Cancel    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Members:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "members")),
		Claims:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "claims")),
		Schemes:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "schemes")),
		Providers: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "providers")),
		Home:      key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "home")),
		Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		ClearFlt:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear member filter")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Filter:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "entity filter")),
		Choose:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Members, k.Claims, k.Schemes, k.Providers, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.Filter, k.Choose, k.Cancel},
		{k.Members, k.Claims, k.Schemes, k.Providers, k.Home},
		{k.Up, k.Down, k.Reload, k.ClearFlt},
		{k.Help, k.Quit},
	}
}
