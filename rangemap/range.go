package rangemap

import (
	"cmp"
	"fmt"
)

// Range is a half-open interval [Start, End).
type Range[P cmp.Ordered] struct {
	Start P
	End   P
}

// NewRange returns [start, end).
func NewRange[P cmp.Ordered](start, end P) Range[P] {
	return Range[P]{Start: start, End: end}
}

// Valid reports whether r contains at least one position.
func (r Range[P]) Valid() bool {
	return cmp.Less(r.Start, r.End)
}

// IsEmpty reports whether r covers no position.
func (r Range[P]) IsEmpty() bool {
	return !r.Valid()
}

// Contains reports whether p lies in [Start, End).
func (r Range[P]) Contains(p P) bool {
	return cmp.Compare(r.Start, p) <= 0 && cmp.Less(p, r.End)
}

// Overlaps reports whether r and o share at least one position.
func (r Range[P]) Overlaps(o Range[P]) bool {
	if !r.Valid() || !o.Valid() {
		return false
	}
	return cmp.Less(r.Start, o.End) && cmp.Less(o.Start, r.End)
}

// Intersect returns the common part of r and o. ok is false when they do not
// overlap.
func (r Range[P]) Intersect(o Range[P]) (Range[P], bool) {
	if !r.Overlaps(o) {
		return Range[P]{}, false
	}
	return Range[P]{Start: max(r.Start, o.Start), End: min(r.End, o.End)}, true
}

func (r Range[P]) String() string {
	return fmt.Sprintf("[%v, %v)", r.Start, r.End)
}
