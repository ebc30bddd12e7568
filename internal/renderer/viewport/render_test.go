package viewport

import (
	"testing"

	"github.com/dshills/yap/internal/document"
	"github.com/dshills/yap/internal/renderer/core"
)

func TestClip(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		start int
		width int
		want  string
	}{
		{"whole line", "hello", 0, 10, "hello"},
		{"cut at width", "hello world", 0, 5, "hello"},
		{"panned", "hello world", 6, 10, "world"},
		{"panned and cut", "hello world", 2, 3, "llo"},
		{"start at end", "hello", 5, 10, ""},
		{"start past end", "hi", 3, 10, ""},
		{"zero width", "hello", 0, 0, ""},
		{"empty line", "", 0, 10, ""},
		{"multibyte", "αβγδεζ", 2, 3, "γδε"},
		{"multibyte to end", "αβγδεζ", 4, 10, "εζ"},
		{"mixed widths", "a€b😀c", 1, 3, "€b😀"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clip(tt.line, tt.start, tt.width); got != tt.want {
				t.Errorf("clip(%q, %d, %d) = %q, want %q", tt.line, tt.start, tt.width, got, tt.want)
			}
		})
	}
}

func TestRedraw(t *testing.T) {
	s := newScreen(t, 12, 6)
	v := New(numbered(10), core.Vec2{X: 10, Y: 4})
	v.offset.Y = 3

	if err := v.Redraw(s); err != nil {
		t.Fatal(err)
	}

	want := []string{"line 3", "line 4", "line 5", "line 6", "", ""}
	for y, w := range want {
		if got := s.Row(y); got != w {
			t.Errorf("row %d = %q, want %q", y, got, w)
		}
	}
	if s.Flushes() != 1 {
		t.Errorf("expected one flush per redraw, got %d", s.Flushes())
	}
}

func TestRedrawMultibytePanned(t *testing.T) {
	s := newScreen(t, 5, 4)
	v := New(document.NewStatic("αβγδεζ", "ab"), core.Vec2{X: 3, Y: 2})
	v.offset.X = 2

	if err := v.Redraw(s); err != nil {
		t.Fatal(err)
	}
	if got := s.Row(0); got != "γδε" {
		t.Errorf("row 0 = %q, want %q", got, "γδε")
	}
	if got := s.Row(1); got != "" {
		t.Errorf("short line should leave an empty row, got %q", got)
	}
}

func TestQueueLineClearsStaleText(t *testing.T) {
	s := newScreen(t, 10, 3)
	s.MoveTo(0, 0)
	s.Print("XXXXXXXXXX", core.DefaultStyle())

	v := New(document.NewStatic("ab"), core.Vec2{X: 8, Y: 1})
	s.MoveTo(0, 0)
	v.QueueLine(s, 0)

	if got := s.Row(0); got != "ab" {
		t.Errorf("row 0 = %q, want %q", got, "ab")
	}
	if x, y := s.CursorPosition(); x != 0 || y != 1 {
		t.Errorf("cursor should move to the next row, got (%d, %d)", x, y)
	}
}

func TestQueueLineIfVisible(t *testing.T) {
	s := newScreen(t, 10, 6)
	v := New(numbered(20), core.Vec2{X: 10, Y: 4})
	v.offset.Y = 5

	if v.QueueLineIfVisible(s, 4) {
		t.Error("line above the window should not be drawn")
	}
	if v.QueueLineIfVisible(s, 9) {
		t.Error("line below the window should not be drawn")
	}
	if !v.QueueLineIfVisible(s, 7) {
		t.Fatal("line inside the window should be drawn")
	}
	if got := s.Row(2); got != "line 7" {
		t.Errorf("row 2 = %q, want %q", got, "line 7")
	}
	if s.Flushes() != 0 {
		t.Errorf("QueueLineIfVisible should leave flushing to the caller")
	}
}
