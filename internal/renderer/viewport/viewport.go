// Package viewport provides the scrollable, pannable window over a document.
//
// A DocumentView owns an offset (the first visible column and line) and a
// size (the pane in cells). Navigation methods move the offset, clamp it
// to the document, and redraw the pane through a Screen. A navigation whose
// guard fails is a silent no-op: nothing moves and nothing is drawn.
package viewport

import (
	"errors"

	"github.com/dshills/yap/internal/document"
	"github.com/dshills/yap/internal/renderer/core"
)

// ErrReadOnly is returned when pushing a line into a view whose document
// does not accept new lines.
var ErrReadOnly = errors.New("document is read-only")

// Screen is the part of the terminal backend a view draws through.
type Screen interface {
	MoveTo(x, y int)
	Print(text string, style core.Style)
	ClearToEOL()
	NextLine()
	Flush() error
}

// DocumentView is the visible window over a document.
type DocumentView struct {
	doc document.Document

	// offset.Y is the first visible line, offset.X the first visible column.
	offset core.Vec2

	// size is the pane in cells.
	size core.Vec2

	style core.Style
}

// New creates a view of doc with the given pane size, scrolled to the top.
func New(doc document.Document, size core.Vec2) *DocumentView {
	return &DocumentView{
		doc:   doc,
		size:  size,
		style: core.DefaultStyle(),
	}
}

// Document returns the document being viewed.
func (v *DocumentView) Document() document.Document {
	return v.doc
}

// Offset returns the current scroll (Y) and pan (X) position.
func (v *DocumentView) Offset() core.Vec2 {
	return v.offset
}

// Size returns the pane size.
func (v *DocumentView) Size() core.Vec2 {
	return v.size
}

// Resize replaces the pane size. It performs no I/O; the caller redraws.
// The offset is left alone and clamped lazily when lines are drawn.
func (v *DocumentView) Resize(size core.Vec2) {
	v.size = size
}

// IsVisible reports whether line index falls inside the visible window
// [offset.Y, offset.Y+size.Y), regardless of how long the document is.
func (v *DocumentView) IsVisible(index int) bool {
	return index >= v.offset.Y && index < v.offset.Y+v.size.Y
}

// PushLine appends line to the view's document and reports the new
// line's index and whether it landed in the visible window.
func (v *DocumentView) PushLine(line string) (index int, visible bool, err error) {
	a, ok := v.doc.(document.Appender)
	if !ok {
		return 0, false, ErrReadOnly
	}
	index = a.Push(line)
	return index, v.IsVisible(index), nil
}

// visibleLines returns the half-open range of document lines on screen.
func (v *DocumentView) visibleLines() (start, end int) {
	start = v.offset.Y
	end = min(v.offset.Y+v.size.Y, v.doc.Len())
	return start, max(start, end)
}
