package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down, Left, Right key.Binding

	Save   key.Binding
	Export key.Binding
	Import key.Binding
	Share  key.Binding
	Cells  key.Binding
	Center key.Binding
	Prune  key.Binding
	Help   key.Binding
	Quit   key.Binding

	// ForceQuit works in every mode, including the dialog and the picker.
	ForceQuit key.Binding

	// edit dialog
	Commit  key.Binding
	Cancel  key.Binding
	Attach  key.Binding
	Detach  key.Binding
	Confirm key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:    key.NewBinding(key.WithKeys("up")),
		Down:  key.NewBinding(key.WithKeys("down")),
		Left:  key.NewBinding(key.WithKeys("left")),
		Right: key.NewBinding(key.WithKeys("right")),

		Save:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		Export: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
		Import: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "import")),
		Share:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "share")),
		Cells:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "cells")),
		Center: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "center")),
		Prune:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "prune")),
		Help:   key.NewBinding(key.WithKeys("h", "?"), key.WithHelp("h", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),

		Commit:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Attach:  key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "image")),
		Detach:  key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "drop image")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	}
}

var panHelp = key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("↑↓←→/drag", "pan"))
var tapHelp = key.NewBinding(key.WithKeys("click"), key.WithHelp("click", "edit"))

// shortHelp lists the bindings that apply in the current mode.
func (m Model) shortHelp() []key.Binding {
	k := m.keys
	switch {
	case m.picking != pickNone:
		return []key.Binding{k.Confirm, k.Cancel}
	case m.editing():
		return []key.Binding{k.Commit, k.Attach, k.Detach, k.Cancel}
	case m.showCells:
		return []key.Binding{k.Confirm, k.Cells, k.Prune, k.Quit}
	}
	return []key.Binding{panHelp, tapHelp, k.Save, k.Export, k.Import, k.Share, k.Cells, k.Center, k.Prune, k.Help, k.Quit}
}
