package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Width returns the terminal cell width of a single cluster.
//
// Tabs and line breaks report 0; their advance depends on layout.
func Width(cluster string) int {
	if cluster == "" || cluster == "\t" || IsLineBreak(cluster) {
		return 0
	}
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		w = 0
	}
	return w
}

// IsLineBreak reports whether cluster ends a line ("\n", "\r\n" or "\r").
func IsLineBreak(cluster string) bool {
	switch cluster {
	case "\n", "\r\n", "\r":
		return true
	}
	return false
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsPunct reports whether all runes in cluster are Unicode punctuation.
func IsPunct(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsPunct(r) {
			return false
		}
	}
	return true
}

// Index returns the grapheme offset of the n-th (0-based) occurrence of sub in
// text, or -1. Matches that start or end inside a cluster are skipped.
func Index(text, sub string, n int) int {
	if sub == "" || n < 0 {
		return -1
	}

	// Byte offset -> grapheme index at every cluster boundary.
	starts := make(map[int]int)
	g := uniseg.NewGraphemes(text)
	idx := 0
	for g.Next() {
		from, _ := g.Positions()
		starts[from] = idx
		idx++
	}
	starts[len(text)] = idx

	seen := 0
	for off := 0; off <= len(text)-len(sub); {
		i := strings.Index(text[off:], sub)
		if i < 0 {
			return -1
		}
		at := off + i
		startIdx, okStart := starts[at]
		_, okEnd := starts[at+len(sub)]
		if okStart && okEnd {
			if seen == n {
				return startIdx
			}
			seen++
		}
		off = at + 1
	}
	return -1
}
