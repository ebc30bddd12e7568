// Package backend provides terminal backend abstraction for the renderer.
package backend

import "github.com/dshills/yap/internal/renderer/core"

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	// EventClosed reports that no further events can be obtained.
	EventClosed
)

// String returns a short name for the event type.
func (t EventType) String() string {
	switch t {
	case EventKey:
		return "key"
	case EventMouse:
		return "mouse"
	case EventResize:
		return "resize"
	case EventClosed:
		return "closed"
	default:
		return "none"
	}
}

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune
	Mod  ModMask

	// Mouse event fields
	MouseX, MouseY int

	// Resize event fields
	Width, Height int
}

// KeyEvent builds a key event for a special key.
func KeyEvent(k Key) Event {
	return Event{Type: EventKey, Key: k}
}

// RuneEvent builds a key event for a printable character.
func RuneEvent(r rune) Event {
	return Event{Type: EventKey, Key: KeyRune, Rune: r}
}

// ResizeEvent builds a resize event.
func ResizeEvent(width, height int) Event {
	return Event{Type: EventResize, Width: width, Height: height}
}

// Key represents a keyboard key.
type Key int

// Key constants for special keys.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyEscape
	KeyEnter
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlC
)

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// Backend defines the interface for terminal backends.
//
// Drawing calls are queued against a cursor that starts at the top-left
// cell; nothing reaches the terminal until Flush.
type Backend interface {
	// Init enables raw mode, enters the alternate screen and hides the cursor.
	// Must be called before any other methods.
	Init() error

	// Shutdown restores the terminal to the state it had before Init.
	// It is safe to call more than once.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// MoveTo positions the output cursor.
	MoveTo(x, y int)

	// Print writes text at the cursor and advances it.
	// Text past the right edge is dropped.
	Print(text string, style core.Style)

	// ClearToEOL blanks the row from the cursor to the right edge.
	ClearToEOL()

	// NextLine moves the cursor to the first column of the next row.
	NextLine()

	// Clear blanks the whole screen.
	Clear()

	// Flush pushes all queued output to the terminal in one batch.
	Flush() error

	// PollEvent waits for and returns the next terminal event.
	// This is a blocking call. After Shutdown it returns an EventClosed event.
	PollEvent() Event
}
