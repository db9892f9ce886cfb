package textlayout

import (
	"sort"
	"strings"

	graphemeutil "github.com/iw2rmb/hyperlabel/internal/grapheme"
)

// Glyph is one laid out grapheme cluster.
type Glyph struct {
	// Index is the grapheme position in the full text.
	Index int

	// Text is what gets drawn. Tabs are expanded to spaces.
	Text string

	// Row is the visual row inside the container, vertical alignment included.
	Row int

	// Cell is the first column inside the container, alignment included.
	Cell  int
	Width int
}

// Line is one visual row.
type Line struct {
	Row    int
	Offset int // alignment offset in cells
	Cells  int // cells occupied by glyphs

	// Start/End is the grapheme span the row covers, line break excluded.
	Start int
	End   int

	Glyphs []Glyph
}

// Layout is an immutable cell layout of Params.Text.
type Layout struct {
	params   Params
	clusters []string

	lines     []Line
	slot      []int // grapheme index -> position in glyphs, or -1
	glyphs    []Glyph
	width     int
	height    int
	truncated bool
}

type pendingRow struct {
	start  int
	glyphs []Glyph
	cells  int
	trail  int // trailing whitespace cells
}

// Build lays out p.
func Build(p Params) *Layout {
	if p.TabWidth <= 0 {
		p.TabWidth = defaultTabWidth
	}

	l := &Layout{params: p, clusters: graphemeutil.Split(p.Text)}
	l.slot = make([]int, len(l.clusters))
	for i := range l.slot {
		l.slot[i] = -1
	}

	rows := l.buildRows()

	limit := len(rows)
	if p.MaxLines > 0 && limit > p.MaxLines {
		limit = p.MaxLines
	}
	if p.Height > 0 && limit > p.Height {
		limit = p.Height
	}
	l.truncated = limit < len(rows)
	rows = rows[:limit]

	natural := 0
	for _, r := range rows {
		natural = max(natural, r.cells)
	}
	l.width = p.Width
	if l.width <= 0 {
		l.width = natural
	}
	l.height = p.Height
	if l.height <= 0 {
		l.height = len(rows)
	}

	top := 0
	if free := l.height - len(rows); free > 0 {
		switch p.VAlign {
		case VAlignCenter:
			top = free / 2
		case VAlignBottom:
			top = free
		}
	}

	l.lines = make([]Line, 0, len(rows))
	for i, r := range rows {
		row := top + i
		offset := alignOffset(p.Align, l.width, r.cells-r.trail)
		line := Line{Row: row, Offset: offset, Start: r.start, End: r.start}
		for _, g := range r.glyphs {
			g.Row = row
			g.Cell += offset
			if p.Width > 0 && g.Cell+g.Width > p.Width {
				// Clipped: the glyph still belongs to the row span but is not drawn.
				line.End = g.Index + 1
				continue
			}
			l.slot[g.Index] = len(l.glyphs)
			l.glyphs = append(l.glyphs, g)
			line.Glyphs = append(line.Glyphs, g)
			line.Cells = g.Cell + g.Width - offset
			line.End = g.Index + 1
		}
		l.lines = append(l.lines, line)
	}
	return l
}

func alignOffset(a Align, width, cells int) int {
	free := width - cells
	if free <= 0 {
		return 0
	}
	switch a {
	case AlignCenter:
		return free / 2
	case AlignRight:
		return free
	default:
		return 0
	}
}

// buildRows splits the text into logical lines and wraps each of them.
func (l *Layout) buildRows() []pendingRow {
	var rows []pendingRow
	start := 0
	for i := 0; i <= len(l.clusters); i++ {
		if i < len(l.clusters) && !graphemeutil.IsLineBreak(l.clusters[i]) {
			continue
		}
		rows = append(rows, l.wrapLogicalLine(start, i)...)
		start = i + 1
	}
	return rows
}

func (l *Layout) wrapLogicalLine(start, end int) []pendingRow {
	glyphs := make([]Glyph, 0, end-start)
	units := make([]wrapUnit, 0, end-start)
	col := 0
	for i := start; i < end; i++ {
		cluster := l.clusters[i]
		w := graphemeutil.Width(cluster)
		text := cluster
		switch {
		case cluster == "\t":
			w = l.params.TabWidth - col%l.params.TabWidth
			text = strings.Repeat(" ", w)
		case w == 0:
			w = 1
			text = "�"
		}
		glyphs = append(glyphs, Glyph{Index: i, Text: text, Width: w})
		units = append(units, newWrapUnit(cluster, w))
		col += w
	}

	spans := wrapUnits(units, l.params.Wrap, l.params.Width)
	rows := make([]pendingRow, 0, len(spans))
	for _, sp := range spans {
		r := pendingRow{start: start + sp[0]}
		cell := 0
		for k := sp[0]; k < sp[1]; k++ {
			g := glyphs[k]
			g.Cell = cell
			cell += g.Width
			r.glyphs = append(r.glyphs, g)
			if units[k].isWhitespace {
				r.trail += g.Width
			} else {
				r.trail = 0
			}
		}
		r.cells = cell
		rows = append(rows, r)
	}
	return rows
}

// Params returns the parameters the layout was built from, defaults applied.
func (l *Layout) Params() Params { return l.params }

// Lines returns the visible rows in order.
func (l *Layout) Lines() []Line { return l.lines }

// GraphemeCount returns the number of clusters in the text.
func (l *Layout) GraphemeCount() int { return len(l.clusters) }

// Size returns the container size in cells. Unconstrained axes report the
// natural size of the text.
func (l *Layout) Size() (width, height int) { return l.width, l.height }

// Truncated reports whether rows were dropped by MaxLines or Height.
func (l *Layout) Truncated() bool { return l.truncated }

// Glyph returns the laid out glyph for a grapheme index. ok is false for
// line breaks, clipped clusters, dropped rows and out of range indices.
func (l *Layout) Glyph(index int) (Glyph, bool) {
	if index < 0 || index >= len(l.slot) || l.slot[index] < 0 {
		return Glyph{}, false
	}
	return l.glyphs[l.slot[index]], true
}

// GlyphAt returns the glyph drawn at the given container cell.
func (l *Layout) GlyphAt(row, cell int) (Glyph, bool) {
	if len(l.lines) == 0 {
		return Glyph{}, false
	}
	i := row - l.lines[0].Row
	if i < 0 || i >= len(l.lines) {
		return Glyph{}, false
	}
	gs := l.lines[i].Glyphs
	k := sort.Search(len(gs), func(k int) bool { return gs[k].Cell+gs[k].Width > cell })
	if k < len(gs) && gs[k].Cell <= cell {
		return gs[k], true
	}
	return Glyph{}, false
}

// Glyphs returns the laid out glyphs with index in [start, end), in text order.
func (l *Layout) Glyphs(start, end int) []Glyph {
	start = max(start, 0)
	end = min(end, len(l.slot))
	var out []Glyph
	for i := start; i < end; i++ {
		if s := l.slot[i]; s >= 0 {
			out = append(out, l.glyphs[s])
		}
	}
	return out
}
