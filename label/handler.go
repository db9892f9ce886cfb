package label

import (
	"iter"
	"log/slog"

	"github.com/iw2rmb/hyperlabel/geom"
	"github.com/iw2rmb/hyperlabel/rangemap"
	"github.com/iw2rmb/hyperlabel/textlayout"
)

// Handler is invoked when its link is tapped.
type Handler func()

// Range is a half-open span of grapheme positions in the label text.
type Range = rangemap.Range[int]

// TapState is the state of a tap gesture, following the usual recognizer
// lifecycle. Only TapEnded triggers link resolution.
type TapState int

const (
	TapPossible TapState = iota
	TapBegan
	TapChanged
	TapEnded
	TapCancelled
	TapFailed
)

func (s TapState) String() string {
	switch s {
	case TapPossible:
		return "possible"
	case TapBegan:
		return "began"
	case TapChanged:
		return "changed"
	case TapEnded:
		return "ended"
	case TapCancelled:
		return "cancelled"
	case TapFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Tap is one gesture event. Location is in the view's coordinate space.
type Tap struct {
	State    TapState
	Location geom.Point
}

// GestureHandler resolves taps on a text view to link handlers.
//
// It is meant to be driven from a single goroutine, the UI loop.
type GestureHandler struct {
	// ExtendsLinkTouchArea enables the nearby search when a tap misses every
	// glyph. NewGestureHandler sets it.
	ExtendsLinkTouchArea bool

	view   ViewRef
	links  rangemap.Map[int, Handler]
	finder *CharacterIndexFinder
	logger *slog.Logger
}

// NewGestureHandler returns a handler with ExtendsLinkTouchArea enabled and
// no view.
func NewGestureHandler() *GestureHandler {
	return &GestureHandler{
		ExtendsLinkTouchArea: true,
		finder:               NewCharacterIndexFinder(),
	}
}

// SetTextView sets the view taps are resolved against. A nil ref detaches.
func (h *GestureHandler) SetTextView(ref ViewRef) { h.view = ref }

// SetLogger sets the debug logger. nil disables logging.
func (h *GestureHandler) SetLogger(l *slog.Logger) { h.logger = l }

func (h *GestureHandler) debug(msg string, args ...any) {
	if h.logger != nil {
		h.logger.Debug(msg, args...)
	}
}

// AddLink makes taps on r invoke fn. Later links shadow earlier ones where
// they overlap. Empty or inverted ranges and nil handlers are ignored.
func (h *GestureHandler) AddLink(r Range, fn Handler) {
	if fn == nil {
		return
	}
	if !h.links.Set(r, fn) {
		h.debug("link ignored", "range", r)
	}
}

// RemoveAllLinks drops every registered link.
func (h *GestureHandler) RemoveAllLinks() { h.links.Clear() }

// Links iterates the registered link segments in text order.
func (h *GestureHandler) Links() iter.Seq2[Range, Handler] {
	return h.links.All()
}

// HandleTapGesture resolves an ended tap and invokes the owning link handler.
// It reports whether a handler ran. Every other outcome is a silent no-op.
func (h *GestureHandler) HandleTapGesture(tap Tap) bool {
	if tap.State != TapEnded {
		return false
	}
	r, fn, ok := h.LinkAt(tap.Location)
	if !ok {
		h.debug("tap matched no link", "point", tap.Location)
		return false
	}
	h.debug("tap matched link", "point", tap.Location, "range", r)
	fn()
	return true
}

// LinkAt resolves pt the way an ended tap would, without invoking anything.
func (h *GestureHandler) LinkAt(pt geom.Point) (Range, Handler, bool) {
	if !h.refresh() {
		return Range{}, nil, false
	}
	if r, fn, ok := h.linkAtPoint(pt); ok || !h.ExtendsLinkTouchArea {
		return r, fn, ok
	}
	return h.linkNearPoint(pt)
}

// Rect returns the view-space bounding rectangle of r, or a zero rectangle
// when the view is gone or r is not laid out.
func (h *GestureHandler) Rect(r Range) geom.Rect {
	if !h.refresh() {
		return geom.Rect{}
	}
	return h.finder.Rect(r)
}

// Layout refreshes the finder from the view and returns its layout, or nil
// when the view is gone.
func (h *GestureHandler) Layout() *textlayout.Layout {
	if !h.refresh() {
		return nil
	}
	return h.finder.Layout()
}

// Finder exposes the position resolver, refreshed on every tap and Rect call.
func (h *GestureHandler) Finder() *CharacterIndexFinder { return h.finder }

func (h *GestureHandler) refresh() bool {
	if h.view == nil {
		h.debug("no text view")
		return false
	}
	v, ok := h.view.TextView()
	if !ok {
		h.debug("text view released")
		return false
	}
	if h.finder == nil {
		h.finder = NewCharacterIndexFinder()
	}
	h.finder.Update(v)
	return true
}

func (h *GestureHandler) linkNearPoint(pt geom.Point) (Range, Handler, bool) {
	for _, radius := range toleranceRadii() {
		for _, d := range toleranceOffsets(radius) {
			if r, fn, ok := h.linkAtPoint(pt.Add(d)); ok {
				h.debug("nearby link", "radius", radius, "offset", d)
				return r, fn, true
			}
		}
	}
	return Range{}, nil, false
}

func (h *GestureHandler) linkAtPoint(pt geom.Point) (Range, Handler, bool) {
	idx, ok := h.finder.IndexOfCharacter(pt)
	if !ok {
		return Range{}, nil, false
	}
	return h.links.Lookup(idx)
}
