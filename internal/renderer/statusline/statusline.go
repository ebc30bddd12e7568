// Package statusline provides the one-row status bar drawn under the pane.
package statusline

import (
	"github.com/mattn/go-runewidth"

	"github.com/dshills/yap/internal/renderer/backend"
	"github.com/dshills/yap/internal/renderer/core"
)

// StatusLine renders a single line of key hints across the full width of
// the terminal.
type StatusLine struct {
	text  string
	style core.Style
	width int
}

// New creates a status line showing text in style.
func New(text string, style core.Style) *StatusLine {
	return &StatusLine{
		text:  text,
		style: style,
	}
}

// DefaultStyle is reverse video.
func DefaultStyle() core.Style {
	return core.DefaultStyle().Reverse()
}

// ColorStyle returns a bar with background bg and a foreground chosen to
// stay readable on it.
func ColorStyle(bg core.Color) core.Style {
	if bg.IsDefault() {
		return DefaultStyle()
	}
	return core.DefaultStyle().WithBackground(bg).WithForeground(bg.Contrast())
}

// SetText replaces the displayed text.
func (s *StatusLine) SetText(text string) {
	s.text = text
}

// Text returns the displayed text.
func (s *StatusLine) Text() string {
	return s.text
}

// Style returns the bar style.
func (s *StatusLine) Style() core.Style {
	return s.style
}

// Resize updates the status line width.
func (s *StatusLine) Resize(width int) {
	s.width = max(width, 0)
}

// Render draws the status line on row. The text is truncated to the
// width by display cells and the rest of the row is filled with the bar
// style. The caller flushes.
func (s *StatusLine) Render(b backend.Backend, row int) {
	b.MoveTo(0, row)
	if s.width == 0 {
		return
	}
	b.Print(s.format(), s.style)
}

// format fits the text to exactly width display cells.
func (s *StatusLine) format() string {
	text := runewidth.Truncate(s.text, s.width, "")
	return runewidth.FillRight(text, s.width)
}
