package views

import "github.com/charmbracelet/bubbles/key"

// PresentationKeyMap defines key bindings for the presentation view
type PresentationKeyMap struct {
	NextCard    key.Binding
	PrevCard    key.Binding
	Activate    key.Binding
	NextSection key.Binding
	PrevSection key.Binding
	LineDown    key.Binding
	LineUp      key.Binding
	PageDown    key.Binding
	PageUp      key.Binding
	Top         key.Binding
	Bottom      key.Binding
	JumpSection key.Binding
	Copy        key.Binding
	Search      key.Binding
	Edit        key.Binding
	Reload      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

var PresentationKeys = PresentationKeyMap{
	NextCard: key.NewBinding(
		key.WithKeys("down", "right"),
		key.WithHelp("↓/→", "next card"),
	),
	PrevCard: key.NewBinding(
		key.WithKeys("up", "left"),
		key.WithHelp("↑/←", "prev card"),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "center card"),
	),
	NextSection: key.NewBinding(
		key.WithKeys(" ", "n"),
		key.WithHelp("space/n", "next section"),
	),
	PrevSection: key.NewBinding(
		key.WithKeys("p", "b"),
		key.WithHelp("p", "prev section"),
	),
	LineDown: key.NewBinding(
		key.WithKeys("j", "ctrl+e"),
		key.WithHelp("j", "scroll down"),
	),
	LineUp: key.NewBinding(
		key.WithKeys("k", "ctrl+y"),
		key.WithHelp("k", "scroll up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "page down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "page up"),
	),
	Top: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "bottom"),
	),
	JumpSection: key.NewBinding(
		key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("0-9", "jump to section"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy card"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "find card"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit deck"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
