package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/termpong/internal/game"
)

// KeyToIntent maps a key to a paddle intent: w/s drive the left paddle and
// the arrow keys drive the right one. ok is false for any other key.
func KeyToIntent(key tcell.Key, r rune) (side game.Side, intent game.Intent, ok bool) {
	switch key {
	case tcell.KeyUp:
		return game.SideRight, game.Up, true
	case tcell.KeyDown:
		return game.SideRight, game.Down, true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return game.SideLeft, game.Up, true
		case 's', 'S':
			return game.SideLeft, game.Down, true
		}
	}
	return 0, game.Stop, false
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	return key == tcell.KeyRune && (r == 'q' || r == 'Q')
}

// IsPauseKey returns true for the space bar and 'p'
func IsPauseKey(key tcell.Key, r rune) bool {
	return key == tcell.KeyRune && (r == ' ' || r == 'p' || r == 'P')
}
