// Package geom holds the small float geometry used for hit-testing.
//
// Coordinates are in view points; +Y points down as in terminal rows.
package geom

import (
	"fmt"
	"math"
)

// Point is a location in view points.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p moved by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

func (p Point) String() string { return fmt.Sprintf("(%g,%g)", p.X, p.Y) }

// Size is a width and height in view points.
type Size struct {
	Width, Height float64
}

// IsZero reports whether s has no area.
func (s Size) IsZero() bool { return s.Width <= 0 || s.Height <= 0 }

// Rect is an axis-aligned rectangle with origin at its top-left corner.
type Rect struct {
	Origin Point
	Size   Size
}

// RectXYWH builds a Rect from its origin and size.
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

func (r Rect) MinX() float64 { return r.Origin.X }
func (r Rect) MinY() float64 { return r.Origin.Y }
func (r Rect) MaxX() float64 { return r.Origin.X + r.Size.Width }
func (r Rect) MaxY() float64 { return r.Origin.Y + r.Size.Height }

// IsEmpty reports whether r has no area.
func (r Rect) IsEmpty() bool { return r.Size.IsZero() }

// Contains uses half-open edges: the max edges belong to the neighbour.
func (r Rect) Contains(p Point) bool {
	if r.IsEmpty() {
		return false
	}
	return p.X >= r.MinX() && p.X < r.MaxX() && p.Y >= r.MinY() && p.Y < r.MaxY()
}

// Union returns the smallest rectangle containing r and o. Empty rectangles
// do not contribute.
func (r Rect) Union(o Rect) Rect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	minX := math.Min(r.MinX(), o.MinX())
	minY := math.Min(r.MinY(), o.MinY())
	maxX := math.Max(r.MaxX(), o.MaxX())
	maxY := math.Max(r.MaxY(), o.MaxY())
	return RectXYWH(minX, minY, maxX-minX, maxY-minY)
}

func (r Rect) String() string {
	return fmt.Sprintf("{%g,%g %gx%g}", r.Origin.X, r.Origin.Y, r.Size.Width, r.Size.Height)
}
