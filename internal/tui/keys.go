package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	quit      key.Binding
	fill      key.Binding
	copySec   key.Binding
	copyUser  key.Binding
	copyOTP   key.Binding
	detail    key.Binding
	yes       key.Binding
	no        key.Binding
	focusFind key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "ctrl+p")),
	down:      key.NewBinding(key.WithKeys("down", "ctrl+n")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	fill:      key.NewBinding(key.WithKeys("ctrl+f")),
	copySec:   key.NewBinding(key.WithKeys("ctrl+y")),
	copyUser:  key.NewBinding(key.WithKeys("ctrl+u")),
	copyOTP:   key.NewBinding(key.WithKeys("ctrl+o")),
	detail:    key.NewBinding(key.WithKeys("ctrl+d")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
	focusFind: key.NewBinding(key.WithKeys("/")),
}
