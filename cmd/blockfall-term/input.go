package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
)

// keyAction maps a key press to a board action. quit is set for the keys
// that end the program.
func keyAction(ev *tcell.EventKey) (action tetris.Action, quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return nil, true
	case tcell.KeyLeft:
		return tetris.MoveLeft{}, false
	case tcell.KeyRight:
		return tetris.MoveRight{}, false
	case tcell.KeyUp:
		return tetris.Rotate{}, false
	case tcell.KeyDown:
		return tetris.SoftDrop{}, false
	case tcell.KeyEnter:
		return tetris.Reset{}, false
	case tcell.KeyRune:
	default:
		return nil, false
	}

	switch r := ev.Rune(); {
	case r == 'q':
		return nil, true
	case r == ' ':
		return tetris.HardDrop{}, false
	case r >= '0' && r <= '5':
		return tetris.Spawn{Shape: tetris.Shape(r - '0')}, false
	}

	// Script codes work as keys too, except that unknown runes do nothing.
	if action := tetris.ParseAction(string(ev.Rune())); action != (tetris.Spawn{}) {
		return action, false
	}
	return nil, false
}
