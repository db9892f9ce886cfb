package label

import (
	graphemeutil "github.com/iw2rmb/hyperlabel/internal/grapheme"
	"github.com/iw2rmb/hyperlabel/rangemap"
)

// FindRange returns the grapheme range of the n-th (0-based) occurrence of
// sub in text.
func FindRange(text, sub string, n int) (Range, bool) {
	start := graphemeutil.Index(text, sub, n)
	if start < 0 {
		return Range{}, false
	}
	return rangemap.NewRange(start, start+graphemeutil.Count(sub)), true
}

// TextLength returns the number of positions in text.
func TextLength(text string) int { return graphemeutil.Count(text) }
