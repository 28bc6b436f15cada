// Package terminal runs an interactive board session in a terminal.
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/arcade/internal/application/system"
)

// Action is what a key press asks the session to do
type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionAttack
	ActionArm // next arrow attacks instead of moving
	ActionToggleTraps
	ActionQuit
)

// Keys translates key events into actions. Pressing 'a' arms an attack
// for the next arrow key; any other key disarms it.
type Keys struct {
	armed bool
}

// Armed reports whether the next arrow key attacks
func (k *Keys) Armed() bool {
	return k.armed
}

// Translate maps a key event to an action and, for moves and attacks, a
// direction
func (k *Keys) Translate(ev *tcell.EventKey) (Action, system.Direction) {
	if dir, ok := arrowDirection(ev.Key()); ok {
		action := ActionMove
		if k.armed || ev.Modifiers()&tcell.ModShift != 0 {
			action = ActionAttack
		}
		k.armed = false
		return action, dir
	}

	k.armed = false
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, 0
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return ActionQuit, 0
		case 'a', 'A':
			k.armed = true
			return ActionArm, 0
		case 'r', 'R':
			return ActionToggleTraps, 0
		}
	}
	return ActionNone, 0
}

func arrowDirection(key tcell.Key) (system.Direction, bool) {
	switch key {
	case tcell.KeyLeft:
		return system.DirLeft, true
	case tcell.KeyRight:
		return system.DirRight, true
	case tcell.KeyUp:
		return system.DirUp, true
	case tcell.KeyDown:
		return system.DirDown, true
	default:
		return 0, false
	}
}
