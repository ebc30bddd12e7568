package core

import (
	"testing"
)

func TestColorDefault(t *testing.T) {
	c := ColorDefault
	if !c.IsDefault() {
		t.Error("ColorDefault should be default")
	}
	if c.String() != "default" {
		t.Errorf("expected 'default', got %q", c.String())
	}
}

func TestColorFromRGB(t *testing.T) {
	c := ColorFromRGB(255, 128, 64)

	if c.R != 255 || c.G != 128 || c.B != 64 {
		t.Errorf("expected (255, 128, 64), got (%d, %d, %d)", c.R, c.G, c.B)
	}
	if c.IsDefault() {
		t.Error("RGB color should not be default")
	}
	if c.String() != "#FF8040" {
		t.Errorf("expected '#FF8040', got %q", c.String())
	}
}

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b uint8
		wantErr bool
	}{
		{"#FF8040", 255, 128, 64, false},
		{"#ff8040", 255, 128, 64, false},
		{"FF8040", 255, 128, 64, false},
		{"#FFF", 255, 255, 255, false},
		{"#000", 0, 0, 0, false},
		{"invalid", 0, 0, 0, true},
		{"#GGG", 0, 0, 0, true},
		{"#12345", 0, 0, 0, true},
	}

	for _, tt := range tests {
		c, err := ColorFromHex(tt.hex)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ColorFromHex(%q) expected error", tt.hex)
			}
			continue
		}
		if err != nil {
			t.Errorf("ColorFromHex(%q) unexpected error: %v", tt.hex, err)
			continue
		}
		if c.R != tt.r || c.G != tt.g || c.B != tt.b {
			t.Errorf("ColorFromHex(%q) = (%d, %d, %d), want (%d, %d, %d)",
				tt.hex, c.R, c.G, c.B, tt.r, tt.g, tt.b)
		}
	}
}

func TestColorEquals(t *testing.T) {
	if !ColorDefault.Equals(ColorDefault) {
		t.Error("default should equal default")
	}
	if ColorDefault.Equals(ColorBlack) {
		t.Error("default should not equal black")
	}
	if !ColorFromRGB(1, 2, 3).Equals(ColorFromRGB(1, 2, 3)) {
		t.Error("identical RGB colors should be equal")
	}
	if ColorFromRGB(1, 2, 3).Equals(ColorFromRGB(1, 2, 4)) {
		t.Error("different RGB colors should not be equal")
	}
}

func TestColorContrast(t *testing.T) {
	tests := []struct {
		name string
		bg   Color
		want Color
	}{
		{"white background", ColorWhite, ColorBlack},
		{"yellow background", ColorFromRGB(255, 255, 0), ColorBlack},
		{"black background", ColorBlack, ColorWhite},
		{"navy background", ColorFromRGB(0, 0, 128), ColorWhite},
		{"default background", ColorDefault, ColorDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.bg.Contrast(); !got.Equals(tt.want) {
				t.Errorf("Contrast() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStyleBuilders(t *testing.T) {
	s := DefaultStyle()
	if !s.Foreground.IsDefault() || !s.Background.IsDefault() || s.Attributes != AttrNone {
		t.Errorf("unexpected default style: %+v", s)
	}

	s = s.WithForeground(ColorBlack).WithBackground(ColorWhite).Reverse()
	if !s.Foreground.Equals(ColorBlack) {
		t.Error("foreground should be black")
	}
	if !s.Background.Equals(ColorWhite) {
		t.Error("background should be white")
	}
	if !s.Attributes.Has(AttrReverse) {
		t.Error("reverse should be set")
	}
	if s.Equals(DefaultStyle()) {
		t.Error("modified style should differ from default")
	}
}

func TestEmptyCell(t *testing.T) {
	c := EmptyCell()
	if c.Rune != ' ' {
		t.Errorf("expected space, got %q", c.Rune)
	}
	if !c.Equals(Cell{Rune: ' ', Style: DefaultStyle()}) {
		t.Error("empty cell should equal a default-styled space")
	}
	if c.Equals(Cell{Rune: 'x', Style: DefaultStyle()}) {
		t.Error("cells with different runes should differ")
	}
}
