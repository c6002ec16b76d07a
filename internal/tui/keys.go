package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	left    key.Binding
	right   key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	toggle  key.Binding
	quit    key.Binding
	logout  key.Binding
	play    key.Binding
	news    key.Binding
	refresh key.Binding
	claim   key.Binding
	copy    key.Binding
	search  key.Binding
	version key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	left:    key.NewBinding(key.WithKeys("left", "h")),
	right:   key.NewBinding(key.WithKeys("right", "l")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	toggle:  key.NewBinding(key.WithKeys(" ")),
	quit:    key.NewBinding(key.WithKeys("q")),
	logout:  key.NewBinding(key.WithKeys("l")),
	play:    key.NewBinding(key.WithKeys("p")),
	news:    key.NewBinding(key.WithKeys("n")),
	refresh: key.NewBinding(key.WithKeys("r")),
	claim:   key.NewBinding(key.WithKeys("r")),
	copy:    key.NewBinding(key.WithKeys("c")),
	search:  key.NewBinding(key.WithKeys("/")),
	version: key.NewBinding(key.WithKeys("v")),
}

// digitIndex maps the keys "1".."9" to option indexes 0..8.
func digitIndex(s string) (int, bool) {
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return 0, false
	}
	return int(s[0] - '1'), true
}
