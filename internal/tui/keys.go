package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Expand    key.Binding
	AddGroup  key.Binding
	AddTask   key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding

	// dialog keys
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Cancel    key.Binding
	WheelUp   key.Binding
	WheelDown key.Binding
	WheelPrev key.Binding
	WheelNext key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "move down"),
	),
	Expand: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter/space", "expand/collapse"),
	),
	AddGroup: key.NewBinding(
		key.WithKeys("a", "n"),
		key.WithHelp("a/n", "add group"),
	),
	AddTask: key.NewBinding(
		key.WithKeys("c", "+"),
		key.WithHelp("c/+", "add timed task"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),

	NextField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous field"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	WheelUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "increase"),
	),
	WheelDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "decrease"),
	),
	WheelPrev: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous wheel"),
	),
	WheelNext: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next wheel"),
	),
}
