package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Action is what a key press asks the loop to do.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionToggle
	ActionSelectAll
	ActionSelectNone
	ActionSelectOnly
	ActionSelectLast
	ActionTogglePreview
	ActionConfirm
	ActionCancel
)

var actionNames = map[Action]string{
	ActionNone:          "none",
	ActionUp:            "up",
	ActionDown:          "down",
	ActionToggle:        "toggle",
	ActionSelectAll:     "select_all",
	ActionSelectNone:    "select_none",
	ActionSelectOnly:    "select_only",
	ActionSelectLast:    "select_last",
	ActionTogglePreview: "toggle_preview",
	ActionConfirm:       "confirm",
	ActionCancel:        "cancel",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return "unknown"
}

// Command is a resolved key press. Index is only meaningful for
// ActionSelectOnly.
type Command struct {
	Action Action
	Index  int
}

// Shifted digits as a US layout delivers them: shift+1 is "!", shift+0 is ")".
var shiftedDigits = []string{"!", "@", "#", "$", "%", "^", "&", "*", "("}

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Toggle     key.Binding
	SelectAll  key.Binding
	SelectNone key.Binding
	SelectOnly key.Binding
	SelectLast key.Binding
	Preview    key.Binding
	Confirm    key.Binding
	Cancel     key.Binding
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
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
		SelectAll: key.NewBinding(
			key.WithKeys("a", "A"),
			key.WithHelp("a", "all"),
		),
		SelectNone: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "none"),
		),
		SelectOnly: key.NewBinding(
			key.WithKeys(shiftedDigits...),
			key.WithHelp("⇧1-9", "only nth"),
		),
		SelectLast: key.NewBinding(
			key.WithKeys(")"),
			key.WithHelp("⇧0", "only last"),
		),
		Preview: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "preview"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// ShortHelp lists the bindings shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Confirm, k.Cancel, k.SelectAll, k.SelectNone, k.Preview, k.SelectOnly}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.SelectAll, k.SelectNone, k.SelectOnly, k.SelectLast},
		{k.Preview, k.Confirm, k.Cancel},
	}
}

// resolve maps a key press to a command. Unknown keys resolve to ActionNone.
func (k keyMap) resolve(msg tea.KeyMsg) Command {
	switch {
	case key.Matches(msg, k.Up):
		return Command{Action: ActionUp}
	case key.Matches(msg, k.Down):
		return Command{Action: ActionDown}
	case key.Matches(msg, k.Toggle):
		return Command{Action: ActionToggle}
	case key.Matches(msg, k.SelectAll):
		return Command{Action: ActionSelectAll}
	case key.Matches(msg, k.SelectNone):
		return Command{Action: ActionSelectNone}
	case key.Matches(msg, k.Confirm):
		return Command{Action: ActionConfirm}
	case key.Matches(msg, k.Cancel):
		return Command{Action: ActionCancel}
	case key.Matches(msg, k.SelectOnly):
		s := msg.String()
		for i, d := range shiftedDigits {
			if s == d {
				return Command{Action: ActionSelectOnly, Index: i}
			}
		}
	case key.Matches(msg, k.SelectLast):
		return Command{Action: ActionSelectLast}
	case key.Matches(msg, k.Preview):
		return Command{Action: ActionTogglePreview}
	}
	return Command{Action: ActionNone}
}
