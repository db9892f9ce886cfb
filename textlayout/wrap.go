package textlayout

import graphemeutil "github.com/iw2rmb/hyperlabel/internal/grapheme"

type wrapUnit struct {
	width int

	isWhitespace bool
	isPunct      bool
}

func newWrapUnit(cluster string, width int) wrapUnit {
	ws := graphemeutil.IsSpace(cluster)
	return wrapUnit{
		width:        width,
		isWhitespace: ws,
		isPunct:      !ws && graphemeutil.IsPunct(cluster),
	}
}

// wrapUnits splits units into [start, end) rows no wider than width.
func wrapUnits(units []wrapUnit, mode WrapMode, width int) [][2]int {
	if len(units) == 0 {
		return [][2]int{{0, 0}}
	}
	if width <= 0 || mode == WrapNone {
		return [][2]int{{0, len(units)}}
	}

	rows := make([][2]int, 0, 1+len(units)/max(width, 1))
	for start := 0; start < len(units); {
		used := 0
		overflow := start
		for overflow < len(units) {
			w := max(units[overflow].width, 1)
			if used > 0 && used+w > width {
				break
			}
			used += w
			overflow++
		}

		end := overflow
		if mode == WrapWord && overflow < len(units) {
			if br, ok := findWordWrapBreak(units, start, overflow); ok {
				end = br
			} else {
				end = adjustBreakForLeadingPunctuation(units, start, overflow)
			}
		}
		if end <= start {
			end = min(start+1, len(units))
		}

		rows = append(rows, [2]int{start, end})
		start = end
	}
	return rows
}

// findWordWrapBreak returns the end of the last whitespace run in
// [start, overflow) so trailing spaces stay on the row they follow.
func findWordWrapBreak(units []wrapUnit, start, overflow int) (int, bool) {
	if start < 0 {
		start = 0
	}
	if overflow > len(units) {
		overflow = len(units)
	}
	if start >= overflow {
		return 0, false
	}

	lastBreak := -1
	i := start
	for i < overflow {
		if !units[i].isWhitespace {
			i++
			continue
		}
		j := i + 1
		for j < overflow && units[j].isWhitespace {
			j++
		}
		lastBreak = j
		i = j
	}

	if lastBreak <= start {
		return 0, false
	}
	return lastBreak, true
}

// adjustBreakForLeadingPunctuation avoids starting a row with punctuation by
// carrying the preceding unit along with it.
func adjustBreakForLeadingPunctuation(units []wrapUnit, start, overflow int) int {
	if overflow >= len(units) || !units[overflow].isPunct {
		return overflow
	}
	if overflow-1 > start {
		return overflow - 1
	}
	return overflow
}
