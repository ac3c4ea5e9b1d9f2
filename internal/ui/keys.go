package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap declares every binding the TUI reacts to.
type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Mark       key.Binding
	Delete     key.Binding
	NewTask    key.Binding
	NextField  key.Binding
	PrevField  key.Binding
	Submit     key.Binding
	DatePicker key.Binding
	DayBack    key.Binding
	DayFwd     key.Binding
	WeekBack   key.Binding
	WeekFwd    key.Binding
	Settings   key.Binding
	Theme      key.Binding
	Close      key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Mark: key.NewBinding(
			key.WithKeys(" ", "space", "x"),
			key.WithHelp("space", "mark"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		NewTask: key.NewBinding(
			key.WithKeys("n", "a"),
			key.WithHelp("n", "new task"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add task"),
		),
		DatePicker: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "date picker"),
		),
		DayBack: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "-1 day"),
		),
		DayFwd: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "+1 day"),
		),
		WeekBack: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "-1 week"),
		),
		WeekFwd: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "+1 week"),
		),
		Settings: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "settings"),
		),
		Theme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "dark mode"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NewTask, k.Mark, k.Delete, k.DatePicker, k.Settings, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Mark, k.Delete},
		{k.NewTask, k.NextField, k.PrevField, k.Submit},
		{k.DatePicker, k.DayBack, k.DayFwd, k.WeekBack, k.WeekFwd},
		{k.Settings, k.Theme, k.Close, k.Help, k.Quit},
	}
}
