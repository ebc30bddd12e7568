package app

import (
	"github.com/dshills/yap/internal/renderer/backend"
	"github.com/dshills/yap/internal/renderer/viewport"
)

type action int

const (
	actionNone action = iota
	actionQuit
	actionInterrupt
	actionHelp
	actionPanLeft
	actionPanRight
	actionScrollDown
	actionScrollUp
	actionNextPage
	actionPrevPage
	actionTop
	actionBottom
)

// navigation maps movement actions to the view operation they perform.
var navigation = map[action]func(*viewport.DocumentView, viewport.Screen) error{
	actionPanLeft:    (*viewport.DocumentView).PanLeft,
	actionPanRight:   (*viewport.DocumentView).PanRight,
	actionScrollDown: (*viewport.DocumentView).ScrollDown,
	actionScrollUp:   (*viewport.DocumentView).ScrollUp,
	actionNextPage:   (*viewport.DocumentView).NextPage,
	actionPrevPage:   (*viewport.DocumentView).PrevPage,
	actionTop:        (*viewport.DocumentView).Top,
	actionBottom:     (*viewport.DocumentView).Bottom,
}

var runeActions = map[rune]action{
	'q': actionQuit,
	'Q': actionQuit,
	'?': actionHelp,
	'h': actionPanLeft,
	'l': actionPanRight,
	'j': actionScrollDown,
	'k': actionScrollUp,
	' ': actionNextPage,
	'g': actionTop,
	'G': actionBottom,
}

var keyActions = map[backend.Key]action{
	backend.KeyCtrlC:    actionInterrupt,
	backend.KeyLeft:     actionPanLeft,
	backend.KeyRight:    actionPanRight,
	backend.KeyDown:     actionScrollDown,
	backend.KeyUp:       actionScrollUp,
	backend.KeyPageDown: actionNextPage,
	backend.KeyPageUp:   actionPrevPage,
	backend.KeyHome:     actionTop,
	backend.KeyEnd:      actionBottom,
}

// keyAction maps a key event to an action. Unbound keys give actionNone.
func keyAction(ev backend.Event) action {
	if ev.Key != backend.KeyRune {
		return keyActions[ev.Key]
	}
	if ev.Mod.Has(backend.ModCtrl) {
		if ev.Rune == 'c' || ev.Rune == 'C' {
			return actionInterrupt
		}
		return actionNone
	}
	return runeActions[ev.Rune]
}
