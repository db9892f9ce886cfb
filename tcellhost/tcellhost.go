// Package tcellhost draws a hyperlabel on a tcell screen and feeds it tcell
// mouse events.
package tcellhost

import (
	"log/slog"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/iw2rmb/hyperlabel/geom"
	"github.com/iw2rmb/hyperlabel/label"
	"github.com/iw2rmb/hyperlabel/textlayout"
)

type Style struct {
	Text    tcell.Style
	Link    tcell.Style
	Pressed tcell.Style
}

func DefaultStyle() Style {
	link := tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue).Underline(true)
	return Style{
		Text:    tcell.StyleDefault,
		Link:    link,
		Pressed: link.Reverse(true),
	}
}

// Options configures a Label.
type Options struct {
	Text string

	// Width and Height are in cells; zero sizes the axis to the text.
	Width, Height int

	WrapMode          textlayout.WrapMode
	Alignment         textlayout.Align
	VerticalAlignment textlayout.VAlign
	MaxLines          int
	TabWidth          int
	CellSize          geom.Size

	// ExtendsLinkTouchArea enables the nearby search; nil means enabled.
	ExtendsLinkTouchArea *bool
	HighlightPressed     bool

	Style  Style
	Logger *slog.Logger
}

type view struct {
	container label.TextContainer
}

func (v *view) TextContainer() label.TextContainer { return v.container }

// Label is a tcell-hosted text label with tappable links.
type Label struct {
	x, y int

	view    *view
	handler *label.GestureHandler
	style   Style
	logger  *slog.Logger

	highlight    bool
	buttons      tcell.ButtonMask
	pressed      bool
	pressedRange label.Range
	pressedLink  bool
}

func New(opts Options) *Label {
	v := &view{container: label.TextContainer{
		Text:              opts.Text,
		CellSize:          opts.CellSize,
		MaxLines:          opts.MaxLines,
		WrapMode:          opts.WrapMode,
		Alignment:         opts.Alignment,
		VerticalAlignment: opts.VerticalAlignment,
		TabWidth:          opts.TabWidth,
	}}
	h := label.NewGestureHandler()
	h.SetLogger(opts.Logger)
	if opts.ExtendsLinkTouchArea != nil {
		h.ExtendsLinkTouchArea = *opts.ExtendsLinkTouchArea
	}
	h.SetTextView(label.WeakView(v))

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	l := &Label{
		view:      v,
		handler:   h,
		style:     opts.Style,
		logger:    logger,
		highlight: opts.HighlightPressed,
	}
	l.SetSize(opts.Width, opts.Height)
	return l
}

// Handler exposes the underlying gesture handler.
func (l *Label) Handler() *label.GestureHandler { return l.handler }

func (l *Label) AddLink(r label.Range, fn label.Handler) { l.handler.AddLink(r, fn) }

func (l *Label) RemoveAllLinks() {
	l.handler.RemoveAllLinks()
	l.pressedLink = false
}

func (l *Label) SetText(text string) {
	l.view.container.Text = text
	l.pressedLink = false
}

func (l *Label) SetSize(width, height int) {
	cs := l.cellSize()
	l.view.container.Bounds = geom.Size{
		Width:  float64(max(width, 0)) * cs.Width,
		Height: float64(max(height, 0)) * cs.Height,
	}
}

// SetOrigin places the label's top-left cell on the screen.
func (l *Label) SetOrigin(x, y int) { l.x, l.y = x, y }

// Rect returns the label-local rectangle of r in view points.
func (l *Label) Rect(r label.Range) geom.Rect { return l.handler.Rect(r) }

// Size returns the label size in cells.
func (l *Label) Size() (int, int) {
	lay := l.handler.Layout()
	if lay == nil {
		return 0, 0
	}
	return lay.Size()
}

func (l *Label) cellSize() geom.Size {
	if l.view.container.CellSize.IsZero() {
		return label.DefaultCellSize
	}
	return l.view.container.CellSize
}

// HandleEvent consumes mouse events. It reports whether a link handler ran.
func (l *Label) HandleEvent(ev tcell.Event) bool {
	me, ok := ev.(*tcell.EventMouse)
	if !ok {
		return false
	}

	x, y := me.Position()
	buttons := me.Buttons()
	was := l.buttons
	l.buttons = buttons
	pt := l.cellPoint(x, y)

	switch {
	case buttons&tcell.Button1 != 0 && was&tcell.Button1 == 0:
		if !l.inBounds(x, y) {
			return false
		}
		l.pressed = true
		l.handler.HandleTapGesture(label.Tap{State: label.TapBegan, Location: pt})
		l.trackPressed(pt)
		return false

	case buttons&tcell.Button1 != 0:
		if !l.pressed {
			return false
		}
		l.handler.HandleTapGesture(label.Tap{State: label.TapChanged, Location: pt})
		l.trackPressed(pt)
		return false

	case was&tcell.Button1 != 0:
		if !l.pressed {
			return false
		}
		l.pressed = false
		l.pressedLink = false
		state := label.TapEnded
		if !l.inBounds(x, y) {
			state = label.TapCancelled
		}
		l.logger.Debug("release", "x", x, "y", y, "state", state)
		return l.handler.HandleTapGesture(label.Tap{State: state, Location: pt})
	}
	return false
}

func (l *Label) trackPressed(pt geom.Point) {
	if !l.highlight {
		return
	}
	r, _, ok := l.handler.LinkAt(pt)
	l.pressedRange, l.pressedLink = r, ok
}

func (l *Label) cellPoint(x, y int) geom.Point {
	cs := l.cellSize()
	return geom.Pt((float64(x-l.x)+0.5)*cs.Width, (float64(y-l.y)+0.5)*cs.Height)
}

func (l *Label) inBounds(x, y int) bool {
	w, h := l.Size()
	x -= l.x
	y -= l.y
	return x >= 0 && x < w && y >= 0 && y < h
}

// Draw paints the label onto s. It does not call Show.
func (l *Label) Draw(s tcell.Screen) {
	lay := l.handler.Layout()
	if lay == nil {
		return
	}
	w, h := lay.Size()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			s.SetContent(l.x+col, l.y+row, ' ', nil, l.style.Text)
		}
	}
	for _, line := range lay.Lines() {
		for _, g := range line.Glyphs {
			l.drawGlyph(s, g)
		}
	}
}

func (l *Label) drawGlyph(s tcell.Screen, g textlayout.Glyph) {
	st := l.glyphStyle(g.Index)
	x, y := l.x+g.Cell, l.y+g.Row
	if g.Width > 1 && strings.Trim(g.Text, " ") == "" {
		for i := 0; i < g.Width; i++ {
			s.SetContent(x+i, y, ' ', nil, st)
		}
		return
	}
	runes := []rune(g.Text)
	if len(runes) == 0 {
		return
	}
	s.SetContent(x, y, runes[0], runes[1:], st)
}

func (l *Label) glyphStyle(index int) tcell.Style {
	if l.pressedLink && l.pressedRange.Contains(index) {
		return l.style.Pressed
	}
	for r := range l.handler.Links() {
		if r.Contains(index) {
			return l.style.Link
		}
		if r.Start > index {
			break
		}
	}
	return l.style.Text
}
