// Package document provides the line stores a pager view can display.
//
// A Document is read by index; callers never see how lines are stored.
// Widths are measured in Unicode code points, the same unit the renderer
// uses when it slices a line to the visible column range.
package document

import "unicode/utf8"

// Document is an ordered, line-indexed text source.
type Document interface {
	// Len returns the number of lines.
	Len() int

	// MaxLineLen returns the length of the longest line, in code points.
	MaxLineLen() int

	// Line returns the text of line i (0-based).
	// It panics if i is out of range, like a slice index.
	Line(i int) string
}

// Appender is a Document that accepts new lines at the end.
type Appender interface {
	Document

	// Push appends a line and returns its index.
	Push(line string) int
}

// Stream is a document that grows as lines arrive.
// Lines are never removed or changed once pushed.
type Stream struct {
	lines      []string
	maxLineLen int
}

// NewStream creates an empty stream with room for capacity lines.
func NewStream(capacity int) *Stream {
	return &Stream{lines: make([]string, 0, max(capacity, 0))}
}

// Push appends a line and returns its arrival index.
func (s *Stream) Push(line string) int {
	index := len(s.lines)
	s.maxLineLen = max(s.maxLineLen, utf8.RuneCountInString(line))
	s.lines = append(s.lines, line)
	return index
}

func (s *Stream) Len() int {
	return len(s.lines)
}

func (s *Stream) MaxLineLen() int {
	return s.maxLineLen
}

func (s *Stream) Line(i int) string {
	return s.lines[i]
}

// Static is a fixed document, such as help text.
type Static struct {
	lines      []string
	maxLineLen int
}

// NewStatic creates a static document from lines.
// The slice is copied so later changes by the caller are not visible.
func NewStatic(lines ...string) *Static {
	d := &Static{lines: append([]string(nil), lines...)}
	for _, line := range d.lines {
		d.maxLineLen = max(d.maxLineLen, utf8.RuneCountInString(line))
	}
	return d
}

func (d *Static) Len() int {
	return len(d.lines)
}

func (d *Static) MaxLineLen() int {
	return d.maxLineLen
}

func (d *Static) Line(i int) string {
	return d.lines[i]
}

var (
	_ Appender = (*Stream)(nil)
	_ Document = (*Static)(nil)
)
