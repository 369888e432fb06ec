package tui

import "github.com/mattn/go-runewidth"

const ellipsis = "…"

// truncateEnd cuts s to at most width terminal cells, ending in an ellipsis
// when anything was dropped. Wide runes count as two cells.
func truncateEnd(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, ellipsis)
}

// truncateMiddle keeps both ends of s around a single ellipsis. URLs keep
// their host and file name this way.
func truncateMiddle(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return ellipsis
	}

	keep := width - 1
	left := keep / 2
	right := keep - left
	return runewidth.Truncate(s, left, "") + ellipsis + lastCells(s, right)
}

// lastCells returns the longest suffix of s that fits in width cells.
func lastCells(s string, width int) string {
	r := []rune(s)
	used := 0
	i := len(r)
	for i > 0 {
		w := runewidth.RuneWidth(r[i-1])
		if used+w > width {
			break
		}
		used += w
		i--
	}
	return string(r[i:])
}
