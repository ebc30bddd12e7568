package input

import (
	"strings"
	"unicode/utf8"
)

// normalize strips the line terminator, replaces invalid UTF-8 with
// U+FFFD and expands tabs.
func (r *Reader) normalize(line string) string {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if !utf8.ValidString(line) {
		line = strings.ToValidUTF8(line, string(utf8.RuneError))
	}
	return ExpandTabs(line, r.tabWidth)
}

// ExpandTabs replaces each tab with spaces up to the next multiple of
// width, counting columns in code points. A width of zero returns line
// unchanged.
func ExpandTabs(line string, width int) string {
	if width <= 0 || !strings.ContainsRune(line, '\t') {
		return line
	}

	var b strings.Builder
	b.Grow(len(line) + width)
	col := 0
	for _, r := range line {
		if r == '\t' {
			n := width - col%width
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col++
	}
	return b.String()
}
