package app

import (
	"github.com/dshills/yap/internal/renderer/backend"
	"github.com/dshills/yap/internal/renderer/core"
	"github.com/dshills/yap/internal/renderer/viewport"
)

// handleEvent processes a terminal event.
// Returns ErrQuit if the application should exit.
func (a *Application) handleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return a.handleKey(ev)
	case backend.EventResize:
		return a.handleResize(ev.Width, ev.Height)
	case backend.EventMouse:
		a.logger.Error("mouse event reached dispatcher", "x", ev.MouseX, "y", ev.MouseY)
		return ErrMouseEvent
	case backend.EventClosed:
		return ErrQuit
	default:
		return nil
	}
}

// handleKey runs the key's action against the active view.
func (a *Application) handleKey(ev backend.Event) error {
	act := keyAction(ev)
	switch act {
	case actionNone:
		return nil
	case actionInterrupt:
		return ErrQuit
	case actionQuit:
		if a.state == stateHelp {
			return a.hideHelp()
		}
		return ErrQuit
	case actionHelp:
		if a.state == stateHelp {
			return nil
		}
		return a.showHelp()
	}

	move, ok := navigation[act]
	if !ok {
		return nil
	}
	if err := move(a.active(), a.backend); err != nil {
		return drawError(err)
	}
	return nil
}

// handleLine stores an input line in the primary document and draws it
// if it lands on screen.
func (a *Application) handleLine(line string) error {
	index, visible, err := a.primary.PushLine(line)
	if err != nil {
		return NewComponentError("document", "push", err)
	}
	if !visible || a.state != stateNormal {
		return nil
	}
	if a.primary.QueueLineIfVisible(a.backend, index) {
		if err := a.backend.Flush(); err != nil {
			return drawError(err)
		}
	}
	return nil
}

// handleResize resizes every view and repaints the whole screen.
func (a *Application) handleResize(width, height int) error {
	a.size = core.FromSize(width, height)
	pane := a.pane()

	a.primary.Resize(pane)
	if a.help != nil {
		a.help.Resize(pane)
	}

	a.logger.Debug("resize", "width", a.size.X, "height", a.size.Y)
	return a.repaint()
}

// showHelp opens the help overlay over the primary view.
func (a *Application) showHelp() error {
	a.help = viewport.New(helpDocument(), a.pane())
	a.state = stateHelp
	a.status.SetText(hintHelp)
	return a.repaint()
}

// hideHelp drops the help overlay and brings back the primary view as it
// was before the overlay opened.
func (a *Application) hideHelp() error {
	a.help = nil
	a.state = stateNormal
	a.status.SetText(hintNormal)
	return a.repaint()
}

// repaint clears the screen and draws the status bar and the active view.
func (a *Application) repaint() error {
	a.backend.Clear()
	a.drawStatus()
	if err := a.active().Redraw(a.backend); err != nil {
		return drawError(err)
	}
	return nil
}

// drawStatus draws the status bar on the bottom row. It does not flush.
func (a *Application) drawStatus() {
	if a.size.Y == 0 {
		return
	}
	a.status.Resize(a.size.X)
	a.status.Render(a.backend, a.size.Y-1)
}

func drawError(err error) error {
	return NewComponentError("renderer", "draw", err)
}
