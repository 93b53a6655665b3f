package tui

import "github.com/charmbracelet/bubbles/key"

// PreviewKeyMap defines key bindings for Preview mode.
type PreviewKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Collapse key.Binding
	Expand   key.Binding
	Open     key.Binding
	New      key.Binding
	Edit     key.Binding
	Focus    key.Binding
	Copy     key.Binding
	Quit     key.Binding
}

var PreviewKeys = PreviewKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑/↓", "navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
	),
	Collapse: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←/→", "collapse/expand"),
	),
	Expand: key.NewBinding(
		key.WithKeys("right"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new entry"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Focus: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch panel"),
	),
	Copy: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy entry"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "quit"),
	),
}

// EditKeyMap defines key bindings for Edit mode. Character keys fall
// through to buffer insertion and are not listed here.
type EditKeyMap struct {
	Save key.Binding
	Back key.Binding
}

var EditKeys = EditKeyMap{
	Save: key.NewBinding(
		key.WithKeys("ctrl+s", "cmd+s"),
		key.WithHelp("ctrl+s", "save"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

// PromptKeyMap defines key bindings shared by the date and save prompts.
type PromptKeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

var PromptKeys = PromptKeyMap{
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←/→", "choose"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}
