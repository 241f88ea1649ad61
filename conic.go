package contour

import (
	"fmt"
	"iter"
	"math"
)

// MaxSubdivision is the deepest subdivision level chosen by
// [Conic.SubdivisionLevel]. It bounds the output of [Conic.QuadraticsTolerance]
// to 2^MaxSubdivision quadratic segments, regardless of the tolerance.
const MaxSubdivision = 5

// Conic is a rational quadratic Bézier from A to C with control point B.
//
// The weight must be positive. A weight of 1 describes an ordinary quadratic
// Bézier, a weight below 1 an elliptical arc, and a weight above 1 a
// hyperbolic arc. A circular arc spanning the angle θ has the weight cos(θ/2).
//
// The subdivision routines follow the construction used by Skia's
// SkGeometry.
type Conic struct {
	A      Point
	B      Point
	C      Point
	Weight float64
}

func (c Conic) String() string {
	return fmt.Sprintf("Conic(%s, %s, %s, %g)", c.A, c.B, c.C, c.Weight)
}

// Eval evaluates the conic at t ∈ [0, 1]:
//
//	B(t) = ((1-t)²a + 2t(1-t)wb + t²c) / ((1-t)² + 2t(1-t)w + t²)
func (c Conic) Eval(t float64) Point {
	mt := 1 - t
	wa := mt * mt
	wb := 2 * t * mt * c.Weight
	wc := t * t
	v := Vec2(c.A).Mul(wa).
		Add(Vec2(c.B).Mul(wb)).
		Add(Vec2(c.C).Mul(wc))
	return Point(v.Div(wa + wb + wc))
}

// Chop splits the conic at t = 0.5 into two conics that together describe
// exactly the same curve. The halves are in standard form, so chopping can be
// repeated without accumulating error beyond floating point rounding.
func (c Conic) Chop() (Conic, Conic) {
	scale := 1 / (1 + c.Weight)
	weight := math.Sqrt((1 + c.Weight) / 2)
	a := Vec2(c.A)
	cc := Vec2(c.C)
	weighted := Vec2(c.B).Mul(c.Weight)
	middle := Point(a.Add(weighted).Add(weighted).Add(cc).Mul(scale / 2))
	return Conic{c.A, Point(a.Add(weighted).Mul(scale)), middle, weight},
		Conic{middle, Point(weighted.Add(cc).Mul(scale)), c.C, weight}
}

// Subdivide chops the conic level times and returns the control and end
// points of the resulting 2^level pieces, in parametric order. Together with
// the conic's start point, each consecutive pair of points describes one
// quadratic Bézier approximating the conic.
//
// At level 0 the result is {B, C}.
func (c Conic) Subdivide(level int) []Point {
	return c.appendSubdivision(make([]Point, 0, 2<<max(level, 0)), level)
}

func (c Conic) appendSubdivision(dst []Point, level int) []Point {
	if level <= 0 {
		return append(dst, c.B, c.C)
	}
	left, right := c.Chop()
	dst = left.appendSubdivision(dst, level-1)
	return right.appendSubdivision(dst, level-1)
}

// SubdivisionLevel returns the number of times the conic has to be chopped so
// that approximating each piece with a quadratic Bézier deviates from the conic
// by no more than tolerance. The level never exceeds [MaxSubdivision]; at that
// level the error may be larger than tolerance. A negative tolerance selects
// level 0.
//
// The error of a piece is estimated as |k(a − 2b + c)| with
// k = (w − 1) / (4(w + 1)), which is exactly the distance between the midpoints
// of the conic and of the quadratic. Every level of subdivision quarters it.
func (c Conic) SubdivisionLevel(tolerance float64) int {
	if tolerance < 0 {
		return 0
	}
	k := (c.Weight - 1) / (4 * (c.Weight + 1))
	x := k * (c.A.X - 2*c.B.X + c.C.X)
	y := k * (c.A.Y - 2*c.B.Y + c.C.Y)
	err := math.Sqrt(x*x + y*y)
	level := 0
	for ; level < MaxSubdivision && err > tolerance; level++ {
		err *= 0.25
	}
	return level
}

// QuadraticsTolerance approximates the conic with quadratic Béziers whose
// deviation from the conic is at most tolerance, within the limits described
// by [Conic.SubdivisionLevel]. The result has the format of
// [Conic.Subdivide].
func (c Conic) QuadraticsTolerance(tolerance float64) []Point {
	return c.Subdivide(c.SubdivisionLevel(tolerance))
}

// Quadratics approximates the conic with two quadratic Béziers. It is
// equivalent to Subdivide(1).
func (c Conic) Quadratics() []Point {
	return c.Subdivide(1)
}

// QuadBezs returns the quadratic Béziers produced by [Conic.QuadraticsTolerance].
func (c Conic) QuadBezs(tolerance float64) iter.Seq[QuadBez] {
	return func(yield func(QuadBez) bool) {
		pts := c.QuadraticsTolerance(tolerance)
		start := c.A
		for i := 0; i+1 < len(pts); i += 2 {
			if !yield(QuadBez{start, pts[i], pts[i+1]}) {
				return
			}
			start = pts[i+1]
		}
	}
}

// ControlBox returns the bounding box of the control polygon. For weights
// greater than 0 the curve lies inside it.
func (c Conic) ControlBox() Rect {
	return NewRectFromPoints(c.A, c.C).UnionPoint(c.B)
}

func (c Conic) Transform(aff Affine) Conic {
	return Conic{
		c.A.Transform(aff),
		c.B.Transform(aff),
		c.C.Transform(aff),
		c.Weight,
	}
}

// Command returns the [ConicTo] command that draws c from its start point.
func (c Conic) Command() ConicTo {
	return ConicTo{Control: c.B, Point: c.C, Weight: c.Weight}
}
