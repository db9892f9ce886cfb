package label

import "weak"

// TextView is the view a GestureHandler resolves taps against.
type TextView interface {
	TextContainerData
}

// ViewRef is a possibly dangling reference to a TextView.
type ViewRef interface {
	TextView() (TextView, bool)
}

type weakView[V any, P interface {
	*V
	TextView
}] struct {
	ptr weak.Pointer[V]
}

func (w weakView[V, P]) TextView() (TextView, bool) {
	p := w.ptr.Value()
	if p == nil {
		return nil, false
	}
	return P(p), true
}

// WeakView references v without keeping it alive. Once v is collected the
// reference reports no view.
func WeakView[V any, P interface {
	*V
	TextView
}](v P) ViewRef {
	if v == nil {
		return nil
	}
	return weakView[V, P]{ptr: weak.Make((*V)(v))}
}

type strongView struct {
	v TextView
}

func (s strongView) TextView() (TextView, bool) { return s.v, s.v != nil }

// StrongView references v and keeps it alive.
func StrongView(v TextView) ViewRef {
	return strongView{v: v}
}
