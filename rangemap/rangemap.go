package rangemap

import (
	"cmp"
	"iter"
	"sort"
)

type segment[P cmp.Ordered, V any] struct {
	rng   Range[P]
	value V
}

// Map associates disjoint ranges with values.
//
// The zero value is an empty map ready to use. Map is not safe for concurrent
// use.
type Map[P cmp.Ordered, V any] struct {
	segs []segment[P, V]
}

// New returns an empty Map.
func New[P cmp.Ordered, V any]() *Map[P, V] {
	return &Map[P, V]{}
}

// Set makes every position in r resolve to v.
//
// Existing segments that overlap r are clipped to their uncovered parts, so a
// later Set always wins on the overlap. Empty or inverted ranges are ignored
// and Set reports false.
func (m *Map[P, V]) Set(r Range[P], v V) bool {
	if !r.Valid() {
		return false
	}

	// First segment that ends after r.Start may overlap r.
	lo := sort.Search(len(m.segs), func(i int) bool {
		return cmp.Less(r.Start, m.segs[i].rng.End)
	})
	hi := lo
	for hi < len(m.segs) && cmp.Less(m.segs[hi].rng.Start, r.End) {
		hi++
	}

	repl := make([]segment[P, V], 0, 3)
	if lo < hi {
		first := m.segs[lo]
		if cmp.Less(first.rng.Start, r.Start) {
			repl = append(repl, segment[P, V]{rng: Range[P]{Start: first.rng.Start, End: r.Start}, value: first.value})
		}
	}
	repl = append(repl, segment[P, V]{rng: r, value: v})
	if lo < hi {
		last := m.segs[hi-1]
		if cmp.Less(r.End, last.rng.End) {
			repl = append(repl, segment[P, V]{rng: Range[P]{Start: r.End, End: last.rng.End}, value: last.value})
		}
	}

	tail := len(m.segs) - hi
	out := make([]segment[P, V], 0, lo+len(repl)+tail)
	out = append(out, m.segs[:lo]...)
	out = append(out, repl...)
	out = append(out, m.segs[hi:]...)
	m.segs = out
	return true
}

// Value returns the value whose range contains p.
func (m *Map[P, V]) Value(p P) (V, bool) {
	_, v, ok := m.Lookup(p)
	return v, ok
}

// Lookup returns the segment containing p together with its value.
//
// The returned range is the part of the originally set range that is still
// owned by the value, which may be smaller after later overlapping Sets.
func (m *Map[P, V]) Lookup(p P) (Range[P], V, bool) {
	i := sort.Search(len(m.segs), func(i int) bool {
		return cmp.Less(p, m.segs[i].rng.End)
	})
	if i < len(m.segs) && m.segs[i].rng.Contains(p) {
		return m.segs[i].rng, m.segs[i].value, true
	}
	var zero V
	return Range[P]{}, zero, false
}

// Clear removes all segments.
func (m *Map[P, V]) Clear() {
	clear(m.segs)
	m.segs = m.segs[:0]
}

// Len returns the number of disjoint segments.
func (m *Map[P, V]) Len() int { return len(m.segs) }

// All iterates segments in position order.
func (m *Map[P, V]) All() iter.Seq2[Range[P], V] {
	return func(yield func(Range[P], V) bool) {
		for _, s := range m.segs {
			if !yield(s.rng, s.value) {
				return
			}
		}
	}
}

// Overlapping iterates, in position order, the segments that intersect r.
// Each yielded range is clipped to r.
func (m *Map[P, V]) Overlapping(r Range[P]) iter.Seq2[Range[P], V] {
	return func(yield func(Range[P], V) bool) {
		if !r.Valid() {
			return
		}
		i := sort.Search(len(m.segs), func(i int) bool {
			return cmp.Less(r.Start, m.segs[i].rng.End)
		})
		for ; i < len(m.segs) && cmp.Less(m.segs[i].rng.Start, r.End); i++ {
			clipped, _ := m.segs[i].rng.Intersect(r)
			if !yield(clipped, m.segs[i].value) {
				return
			}
		}
	}
}
