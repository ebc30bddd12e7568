package viewport

// QueueLine draws document line index on the screen row under the cursor,
// clipped to the visible columns, then clears the rest of the row and
// moves to the start of the next one. It does not flush.
func (v *DocumentView) QueueLine(s Screen, index int) {
	if text := clip(v.doc.Line(index), v.offset.X, v.size.X); text != "" {
		s.Print(text, v.style)
	}
	s.ClearToEOL()
	s.NextLine()
}

// QueueLineIfVisible draws line index on its row if the line is inside
// the visible window. The caller flushes.
func (v *DocumentView) QueueLineIfVisible(s Screen, index int) bool {
	if !v.IsVisible(index) || index >= v.doc.Len() {
		return false
	}
	s.MoveTo(0, index-v.offset.Y)
	v.QueueLine(s, index)
	return true
}

// Redraw draws every visible line from the top of the pane and flushes
// once.
func (v *DocumentView) Redraw(s Screen) error {
	s.MoveTo(0, 0)
	start, end := v.visibleLines()
	for i := start; i < end; i++ {
		v.QueueLine(s, i)
	}
	return s.Flush()
}

// clip returns the code points of line in [start, start+width).
// A line with no code point at start yields "".
func clip(line string, start, width int) string {
	if width <= 0 {
		return ""
	}

	from, to := -1, len(line)
	n := 0
	for i := range line {
		if n == start {
			from = i
		}
		if n == start+width {
			to = i
			break
		}
		n++
	}
	if from < 0 {
		return ""
	}
	return line[from:to]
}
