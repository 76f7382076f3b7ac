package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	save     key.Binding
	toggle   key.Binding
	logout   key.Binding
	refresh  key.Binding
	newItem  key.Binding
	edit     key.Binding
	delete   key.Binding
	markRead key.Binding
	copy     key.Binding
	article  key.Binding
	project  key.Binding
	version  key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	left:     key.NewBinding(key.WithKeys("left")),
	right:    key.NewBinding(key.WithKeys("right")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	save:     key.NewBinding(key.WithKeys("ctrl+s")),
	toggle:   key.NewBinding(key.WithKeys(" ")),
	logout:   key.NewBinding(key.WithKeys("l")),
	refresh:  key.NewBinding(key.WithKeys("r")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	edit:     key.NewBinding(key.WithKeys("e")),
	delete:   key.NewBinding(key.WithKeys("d")),
	markRead: key.NewBinding(key.WithKeys("m")),
	copy:     key.NewBinding(key.WithKeys("c")),
	article:  key.NewBinding(key.WithKeys("a")),
	project:  key.NewBinding(key.WithKeys("p")),
	version:  key.NewBinding(key.WithKeys("v")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
}
