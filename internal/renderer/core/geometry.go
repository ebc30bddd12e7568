package core

// Vec2 is a size or position in terminal cells.
// X counts columns and Y counts rows; neither is ever negative.
type Vec2 struct {
	X int
	Y int
}

// FromSize converts a terminal size query into a Vec2.
// Negative dimensions, which some backends report while a window is
// being torn down, become zero.
func FromSize(width, height int) Vec2 {
	return Vec2{X: max(width, 0), Y: max(height, 0)}
}

// Sub returns v shrunk by other on each axis, stopping at zero.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: max(v.X-other.X, 0), Y: max(v.Y-other.Y, 0)}
}
