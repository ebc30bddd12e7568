package backend

import (
	"strings"
	"sync"

	"github.com/dshills/yap/internal/renderer/core"
)

// NullBackend is an in-memory backend for testing.
type NullBackend struct {
	width, height int
	cells         [][]core.Cell
	cursorX       int
	cursorY       int
	flushes       int
	flushErr      error
	initialized   bool
	shutdown      bool

	events    chan Event
	closed    chan struct{}
	closeOnce sync.Once
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 100),
		closed: make(chan struct{}),
	}
}

func (b *NullBackend) Init() error {
	b.allocate()
	b.initialized = true
	return nil
}

func (b *NullBackend) allocate() {
	b.cells = make([][]core.Cell, b.height)
	for i := range b.cells {
		b.cells[i] = make([]core.Cell, b.width)
		for j := range b.cells[i] {
			b.cells[i][j] = core.EmptyCell()
		}
	}
}

func (b *NullBackend) Shutdown() {
	b.shutdown = true
	b.CloseEvents()
}

func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *NullBackend) MoveTo(x, y int) {
	b.cursorX = x
	b.cursorY = y
}

func (b *NullBackend) Print(text string, style core.Style) {
	for _, r := range text {
		b.setCell(b.cursorX, b.cursorY, core.Cell{Rune: r, Style: style})
		b.cursorX++
	}
}

func (b *NullBackend) ClearToEOL() {
	for x := b.cursorX; x < b.width; x++ {
		b.setCell(x, b.cursorY, core.EmptyCell())
	}
}

func (b *NullBackend) NextLine() {
	b.cursorX = 0
	b.cursorY++
}

func (b *NullBackend) Clear() {
	empty := core.EmptyCell()
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = empty
		}
	}
}

func (b *NullBackend) Flush() error {
	b.flushes++
	return b.flushErr
}

func (b *NullBackend) PollEvent() Event {
	select {
	case ev := <-b.events:
		return ev
	case <-b.closed:
		return Event{Type: EventClosed}
	}
}

func (b *NullBackend) setCell(x, y int, cell core.Cell) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height && y < len(b.cells) {
		b.cells[y][x] = cell
	}
}

// PostEvent queues a synthetic event for PollEvent.
func (b *NullBackend) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
		// Event dropped if queue is full (non-blocking for testing)
	}
}

// CloseEvents ends the event stream; PollEvent reports EventClosed once
// queued events are drained or immediately, whichever select picks.
func (b *NullBackend) CloseEvents() {
	b.closeOnce.Do(func() { close(b.closed) })
}

// Resize simulates a terminal resize. The caller posts the matching event.
func (b *NullBackend) Resize(width, height int) {
	b.width = width
	b.height = height
	b.allocate()
}

// SetFlushError makes every subsequent Flush fail with err.
func (b *NullBackend) SetFlushError(err error) {
	b.flushErr = err
}

// Cell returns the cell at the given position.
func (b *NullBackend) Cell(x, y int) core.Cell {
	if x >= 0 && x < b.width && y >= 0 && y < b.height && y < len(b.cells) {
		return b.cells[y][x]
	}
	return core.EmptyCell()
}

// Row returns the text of row y with trailing blanks removed.
func (b *NullBackend) Row(y int) string {
	if y < 0 || y >= len(b.cells) {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return strings.TrimRight(sb.String(), " ")
}

// Rows returns the text of every row.
func (b *NullBackend) Rows() []string {
	rows := make([]string, len(b.cells))
	for y := range b.cells {
		rows[y] = b.Row(y)
	}
	return rows
}

// Flushes returns how many times Flush was called.
func (b *NullBackend) Flushes() int {
	return b.flushes
}

// CursorPosition returns the current cursor position for testing.
func (b *NullBackend) CursorPosition() (x, y int) {
	return b.cursorX, b.cursorY
}

// Initialized reports whether Init was called.
func (b *NullBackend) Initialized() bool {
	return b.initialized
}

// IsShutdown reports whether Shutdown was called.
func (b *NullBackend) IsShutdown() bool {
	return b.shutdown
}
