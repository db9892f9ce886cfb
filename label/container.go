package label

import (
	"github.com/iw2rmb/hyperlabel/geom"
	"github.com/iw2rmb/hyperlabel/textlayout"
)

// DefaultCellSize is the size of one terminal cell in view points.
var DefaultCellSize = geom.Size{Width: 8, Height: 16}

// TextContainer is a snapshot of everything that influences text layout.
//
// Bounds is the view size in points; a zero axis is unconstrained and takes
// the natural text size. CellSize maps cells to points; a zero
// CellSize means DefaultCellSize. The snapshot is comparable and is used as
// the layout cache key.
type TextContainer struct {
	Text     string
	Bounds   geom.Size
	CellSize geom.Size

	MaxLines          int
	WrapMode          textlayout.WrapMode
	Alignment         textlayout.Align
	VerticalAlignment textlayout.VAlign
	TabWidth          int
}

// TextContainerData is implemented by views that can describe their text
// layout.
type TextContainerData interface {
	TextContainer() TextContainer
}

func (c TextContainer) cellSize() geom.Size {
	if c.CellSize.IsZero() {
		return DefaultCellSize
	}
	return c.CellSize
}

func (c TextContainer) layoutParams() textlayout.Params {
	cs := c.cellSize()
	return textlayout.Params{
		Text:     c.Text,
		Width:    int(c.Bounds.Width / cs.Width),
		Height:   int(c.Bounds.Height / cs.Height),
		MaxLines: c.MaxLines,
		Wrap:     c.WrapMode,
		Align:    c.Alignment,
		VAlign:   c.VerticalAlignment,
		TabWidth: c.TabWidth,
	}
}
