package viewport

import "github.com/dshills/yap/internal/renderer/core"

// bounds returns the largest offset that still fills the pane on each
// axis, or zero when the content fits.
func (v *DocumentView) bounds() (x, y int) {
	return max(0, v.doc.MaxLineLen()-v.size.X), max(0, v.doc.Len()-v.size.Y)
}

// moveTo clamps target into bounds and redraws if the offset changed.
// Resize leaves the offset alone, so this is where a pane that grew past
// the end of the content gets pulled back.
func (v *DocumentView) moveTo(s Screen, target core.Vec2) error {
	x, y := v.bounds()
	next := core.Vec2{
		X: max(0, min(target.X, x)),
		Y: max(0, min(target.Y, y)),
	}
	if next == v.offset {
		return nil
	}
	v.offset = next
	return v.Redraw(s)
}

// PanLeft moves one column left unless already at the first column.
func (v *DocumentView) PanLeft(s Screen) error {
	return v.moveTo(s, core.Vec2{X: v.offset.X - 1, Y: v.offset.Y})
}

// PanRight moves one column right if the longest line continues past the
// right edge of the pane.
func (v *DocumentView) PanRight(s Screen) error {
	return v.moveTo(s, core.Vec2{X: v.offset.X + 1, Y: v.offset.Y})
}

// ScrollDown moves one line down if at least one more line is off-screen.
func (v *DocumentView) ScrollDown(s Screen) error {
	return v.moveTo(s, core.Vec2{X: v.offset.X, Y: v.offset.Y + 1})
}

// ScrollUp moves one line up unless already at the top.
func (v *DocumentView) ScrollUp(s Screen) error {
	return v.moveTo(s, core.Vec2{X: v.offset.X, Y: v.offset.Y - 1})
}

// PrevPage scrolls up by half a pane, stopping at the top.
// Half pages keep some of the previous screen in view.
func (v *DocumentView) PrevPage(s Screen) error {
	// A pane one row high has no half page; move a line instead.
	step := max(v.size.Y/2, 1)
	return v.moveTo(s, core.Vec2{X: v.offset.X, Y: v.offset.Y - step})
}

// NextPage scrolls down by half a pane. When less than half a pane is
// left it snaps to the last full screen, never past the end.
func (v *DocumentView) NextPage(s Screen) error {
	step := v.size.Y / 2
	if step == 0 {
		_, last := v.bounds()
		return v.moveTo(s, core.Vec2{X: v.offset.X, Y: last})
	}
	return v.moveTo(s, core.Vec2{X: v.offset.X, Y: v.offset.Y + step})
}

// Top scrolls to the first line.
func (v *DocumentView) Top(s Screen) error {
	return v.moveTo(s, core.Vec2{X: v.offset.X})
}

// Bottom scrolls so the last line sits on the bottom row of the pane.
func (v *DocumentView) Bottom(s Screen) error {
	_, last := v.bounds()
	return v.moveTo(s, core.Vec2{X: v.offset.X, Y: last})
}
