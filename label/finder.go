package label

import (
	"math"

	"github.com/iw2rmb/hyperlabel/geom"
	"github.com/iw2rmb/hyperlabel/rangemap"
	"github.com/iw2rmb/hyperlabel/textlayout"
)

// CharacterIndexFinder maps view points to grapheme positions and back.
//
// Call Update before querying; the layout is rebuilt only when the container
// snapshot changed.
type CharacterIndexFinder struct {
	container TextContainer
	cellSize  geom.Size
	layout    *textlayout.Layout
}

// NewCharacterIndexFinder returns a finder with no layout.
func NewCharacterIndexFinder() *CharacterIndexFinder {
	return &CharacterIndexFinder{}
}

// Update refreshes the layout from data. A nil data drops the layout.
func (f *CharacterIndexFinder) Update(data TextContainerData) {
	if data == nil {
		f.layout = nil
		f.container = TextContainer{}
		return
	}
	c := data.TextContainer()
	if f.layout != nil && c == f.container {
		return
	}
	f.container = c
	f.cellSize = c.cellSize()
	f.layout = textlayout.Build(c.layoutParams())
}

// Layout returns the current layout, or nil before the first Update.
func (f *CharacterIndexFinder) Layout() *textlayout.Layout { return f.layout }

// IndexOfCharacter returns the grapheme position whose glyph rectangle
// contains pt.
func (f *CharacterIndexFinder) IndexOfCharacter(pt geom.Point) (int, bool) {
	if f.layout == nil || math.IsNaN(pt.X) || math.IsNaN(pt.Y) {
		return 0, false
	}
	if pt.X < 0 || pt.Y < 0 {
		return 0, false
	}
	row := int(math.Floor(pt.Y / f.cellSize.Height))
	cell := int(math.Floor(pt.X / f.cellSize.Width))
	g, ok := f.layout.GlyphAt(row, cell)
	if !ok {
		return 0, false
	}
	if !f.glyphRect(g).Contains(pt) {
		return 0, false
	}
	return g.Index, true
}

// Rect returns the bounding rectangle of the laid out glyphs in r, or a zero
// rectangle when nothing in r is visible.
func (f *CharacterIndexFinder) Rect(r rangemap.Range[int]) geom.Rect {
	if f.layout == nil || !r.Valid() {
		return geom.Rect{}
	}
	var out geom.Rect
	for _, g := range f.layout.Glyphs(r.Start, r.End) {
		out = out.Union(f.glyphRect(g))
	}
	return out
}

// GlyphRect returns the rectangle of the glyph at a grapheme position.
func (f *CharacterIndexFinder) GlyphRect(index int) (geom.Rect, bool) {
	if f.layout == nil {
		return geom.Rect{}, false
	}
	g, ok := f.layout.Glyph(index)
	if !ok {
		return geom.Rect{}, false
	}
	return f.glyphRect(g), true
}

func (f *CharacterIndexFinder) glyphRect(g textlayout.Glyph) geom.Rect {
	cs := f.cellSize
	return geom.RectXYWH(float64(g.Cell)*cs.Width, float64(g.Row)*cs.Height, float64(g.Width)*cs.Width, cs.Height)
}
