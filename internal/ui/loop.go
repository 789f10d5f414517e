package ui

import (
	"github.com/zackbart/sharkit/internal/session"
)

// State is the picker loop state. Confirmed and Cancelled are terminal.
type State int

const (
	Running State = iota
	Confirmed
	Cancelled
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Confirmed:
		return "confirmed"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

// Done reports whether s is terminal.
func (s State) Done() bool { return s != Running }

// Apply runs one command against the session and returns the next loop
// state. Commands that do not exit leave the loop Running.
func Apply(s *session.Session, c Command) State {
	switch c.Action {
	case ActionConfirm:
		return Confirmed
	case ActionCancel:
		return Cancelled
	case ActionUp:
		s.MoveUp()
	case ActionDown:
		s.MoveDown()
	case ActionToggle:
		s.ToggleCurrent()
	case ActionSelectAll:
		s.SelectAll()
	case ActionSelectNone:
		s.SelectNone()
	case ActionSelectOnly:
		s.SelectOnly(c.Index)
	case ActionSelectLast:
		s.SelectLast()
	case ActionTogglePreview:
		s.TogglePreview()
	}
	return Running
}
