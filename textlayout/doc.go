// Package textlayout lays out label text on a terminal cell grid.
//
// A Layout maps every grapheme cluster of the text to a cell span on a visual
// row, honoring soft wrapping, tab stops, max lines, and horizontal and
// vertical alignment inside a container. Positions are grapheme indices into
// the whole text; line-break clusters occupy a position but no cells.
package textlayout
