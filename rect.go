package contour

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle spanning from (X0, Y0) to (X1, Y1).
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g,%g]..[%g,%g]", r.X0, r.Y0, r.X1, r.Y1)
}

// Min returns the corner with the smallest coordinates.
func (r Rect) Min() Point { return Pt(r.X0, r.Y0) }

// Max returns the corner with the largest coordinates.
func (r Rect) Max() Point { return Pt(r.X1, r.Y1) }

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Size returns the width and height of the rectangle.
func (r Rect) Size() Size {
	return Sz(r.Width(), r.Height())
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// IsEmpty reports whether the rectangle has zero area.
func (r Rect) IsEmpty() bool {
	return r.Width()*r.Height() == 0
}

// Contains reports whether pt lies inside r. The right and bottom edges are
// excluded so that rectangles tiling the plane never share a point.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X < r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y < r.Y1
}

// ContainsInclusive is like Contains but includes all four edges.
func (r Rect) ContainsInclusive(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X <= r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y <= r.Y1
}

// Union returns the smallest rectangle enclosing r and o.
//
// Results are valid only if width and height are non-negative.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Inflate expands a rectangle by a constant amount in both directions.
func (r Rect) Inflate(width, height float64) Rect {
	return Rect{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
}

func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X0) ||
		math.IsNaN(r.X1) ||
		math.IsNaN(r.Y0) ||
		math.IsNaN(r.Y1)
}

// boundsBuilder accumulates points into a rectangle. A builder that saw no
// points yields the zero rectangle.
type boundsBuilder struct {
	rect  Rect
	empty bool
}

func newBoundsBuilder() boundsBuilder {
	return boundsBuilder{empty: true}
}

func (b *boundsBuilder) add(pts ...Point) {
	for _, pt := range pts {
		if b.empty {
			b.empty = false
			b.rect = Rect{pt.X, pt.Y, pt.X, pt.Y}
		} else {
			b.rect = b.rect.UnionPoint(pt)
		}
	}
}

func (b *boundsBuilder) addRect(r Rect) {
	if b.empty {
		b.empty = false
		b.rect = r
	} else {
		b.rect = b.rect.Union(r)
	}
}
