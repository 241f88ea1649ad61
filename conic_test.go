package contour

import (
	"fmt"
	"math"
	"slices"
	"testing"
)

var testConics = []Conic{
	// quarter circle
	{Pt(1, 0), Pt(1, 1), Pt(0, 1), math.Sqrt2 / 2},
	// asymmetric ellipse and hyperbola
	{Pt(0, 0), Pt(1, 2), Pt(3, 0), 0.5},
	{Pt(0, 0), Pt(1, 2), Pt(3, 0), 2},
	{Pt(0, 0), Pt(5, 1), Pt(1, 0), 0.3},
	{Pt(0, 0), Pt(10, 0), Pt(10, 10), 3},
	// parabola
	{Pt(0, 0), Pt(5, 10), Pt(10, 0), 1},
}

func TestConicChopMidpoint(t *testing.T) {
	for _, c := range testConics {
		left, right := c.Chop()
		assertNear(t, left.C, c.Eval(0.5), 1e-12)
		if left.C != right.A {
			t.Errorf("%v: halves don't meet: %v and %v", c, left.C, right.A)
		}
		if left.A != c.A || right.C != c.C {
			t.Errorf("%v: end points moved", c)
		}
		if left.Weight != right.Weight {
			t.Errorf("%v: halves have different weights", c)
		}
	}
}

func TestConicChopExact(t *testing.T) {
	// The halves are reparametrized, but they trace the original curve.
	for _, c := range testConics {
		poly := sampleConic(c, 500)
		left, right := c.Chop()
		for _, h := range []Conic{left, right} {
			for i := range 11 {
				p := h.Eval(float64(i) / 10)
				if d := polylineDistance(p, poly); d > 5e-5 {
					t.Errorf("%v: %v is %g away from the curve", c, p, d)
				}
			}
		}
	}
}

func TestConicChopCircle(t *testing.T) {
	// Chopping repeatedly keeps every point on the circle.
	c := Conic{Pt(1, 0), Pt(1, 1), Pt(0, 1), math.Sqrt2 / 2}
	var walk func(c Conic, depth int)
	walk = func(c Conic, depth int) {
		for _, p := range []Point{c.A, c.C} {
			if r := Vec2(p).Hypot(); math.Abs(r-1) > 1e-12 {
				t.Fatalf("depth %d: %v has distance %v from the center", depth, p, r)
			}
		}
		if depth == 0 {
			return
		}
		left, right := c.Chop()
		walk(left, depth-1)
		walk(right, depth-1)
	}
	walk(c, 6)
}

func TestConicSubdivide(t *testing.T) {
	c := testConics[1]
	diff(t, []Point{c.B, c.C}, c.Subdivide(0))
	diff(t, []Point{c.B, c.C}, c.Subdivide(-1))

	left, right := c.Chop()
	diff(t, []Point{left.B, left.C, right.B, right.C}, c.Subdivide(1))
	diff(t, c.Subdivide(1), c.Quadratics())

	for level := range MaxSubdivision + 2 {
		pts := c.Subdivide(level)
		if want := 2 << level; len(pts) != want {
			t.Errorf("level %d: got %d points, want %d", level, len(pts), want)
		}
		if pts[len(pts)-1] != c.C {
			t.Errorf("level %d: last point is %v, want %v", level, pts[len(pts)-1], c.C)
		}
		// Left half, then right half.
		half := len(pts) / 2
		if level > 0 {
			assertNear(t, pts[half-1], c.Eval(0.5), 1e-12)
		}
	}
}

func TestConicSubdivisionLevel(t *testing.T) {
	quarter := testConics[0]
	tests := []struct {
		c         Conic
		tolerance float64
		want      int
	}{
		{quarter, -1, 0},
		{quarter, 1, 0},
		{quarter, 0.1, 0},
		{quarter, 0.01, 2},
		{quarter, 0.001, 3},
		// Capped
		{quarter, 0, MaxSubdivision},
		{quarter, 1e-12, MaxSubdivision},
		// A weight of 1 is a quadratic Bézier, which needs no subdivision.
		{testConics[5], 0, 0},
		{testConics[2], 0.1, 1},
		{testConics[2], 0.01, 3},
	}
	for _, tt := range tests {
		if got := tt.c.SubdivisionLevel(tt.tolerance); got != tt.want {
			t.Errorf("%v with tolerance %g: got level %d, want %d", tt.c, tt.tolerance, got, tt.want)
		}
		diff(t, tt.c.Subdivide(tt.want), tt.c.QuadraticsTolerance(tt.tolerance))
	}
}

// segmentDistance returns the distance of p from the line segment ab.
func segmentDistance(p, a, b Point) float64 {
	ab := b.Sub(a)
	l := ab.Hypot2()
	if l == 0 {
		return p.Distance(a)
	}
	t := min(max(p.Sub(a).Dot(ab)/l, 0), 1)
	return p.Distance(a.Translate(ab.Mul(t)))
}

func sampleConic(c Conic, n int) []Point {
	poly := make([]Point, n+1)
	for i := range poly {
		poly[i] = c.Eval(float64(i) / float64(n))
	}
	return poly
}

func polylineDistance(p Point, poly []Point) float64 {
	d := math.Inf(1)
	for j := 1; j < len(poly); j++ {
		d = min(d, segmentDistance(p, poly[j-1], poly[j]))
	}
	return d
}

// maxDeviation returns the largest distance of the quadratic approximation of
// c from c itself, sampling both densely.
func maxDeviation(c Conic, tolerance float64) float64 {
	poly := sampleConic(c, 500)
	var worst float64
	for q := range c.QuadBezs(tolerance) {
		for i := range 33 {
			worst = max(worst, polylineDistance(q.Eval(float64(i)/32), poly))
		}
	}
	return worst
}

func TestConicQuadraticsErrorBound(t *testing.T) {
	for _, c := range testConics {
		for _, tol := range []float64{1, 0.1, 0.01, 0.001} {
			t.Run(fmt.Sprintf("%v/%g", c, tol), func(t *testing.T) {
				if c.SubdivisionLevel(tol) == MaxSubdivision {
					t.Skip("error bound doesn't apply at the maximum level")
				}
				if d := maxDeviation(c, tol); d > tol*1.001+1e-5 {
					t.Errorf("deviation %g exceeds tolerance", d)
				}
			})
		}
	}
}

func TestConicQuadBezs(t *testing.T) {
	c := testConics[0]
	qs := slices.Collect(c.QuadBezs(0.001))
	if len(qs) != 8 {
		t.Fatalf("got %d quadratics, want 8", len(qs))
	}
	if qs[0].P0 != c.A || qs[len(qs)-1].P2 != c.C {
		t.Error("quadratics don't span the conic")
	}
	for i := 1; i < len(qs); i++ {
		if qs[i].P0 != qs[i-1].P2 {
			t.Errorf("quadratic %d doesn't start where %d ends", i, i-1)
		}
	}

	// Stopping early
	n := 0
	for range c.QuadBezs(0.001) {
		n++
		break
	}
	if n != 1 {
		t.Errorf("iterated %d times, want 1", n)
	}
}

func TestConicEval(t *testing.T) {
	c := testConics[0]
	assertNear(t, c.Eval(0), c.A, 0)
	assertNear(t, c.Eval(1), c.C, 0)
	for i := range 11 {
		p := c.Eval(float64(i) / 10)
		if r := Vec2(p).Hypot(); math.Abs(r-1) > 1e-12 {
			t.Errorf("%v isn't on the unit circle", p)
		}
	}

	// With a weight of 1, a conic is a quadratic Bézier.
	p := testConics[5]
	q := QuadBez{p.A, p.B, p.C}
	for i := range 11 {
		tt := float64(i) / 10
		assertNear(t, p.Eval(tt), q.Eval(tt), 1e-12)
	}
}

func TestConicControlBox(t *testing.T) {
	for _, c := range testConics {
		box := c.ControlBox()
		for i := range 21 {
			if p := c.Eval(float64(i) / 20); !box.Inflate(1e-12, 1e-12).ContainsInclusive(p) {
				t.Errorf("%v: %v outside of %v", c, p, box)
			}
		}
	}
}

func TestConicTransform(t *testing.T) {
	c := testConics[1]
	aff := Rotate(1).Mul(Scale(2, 3))
	tc := c.Transform(aff)
	if tc.Weight != c.Weight {
		t.Errorf("got weight %v, want %v", tc.Weight, c.Weight)
	}
	// Affine maps commute with evaluation.
	for i := range 11 {
		tt := float64(i) / 10
		assertNear(t, tc.Eval(tt), c.Eval(tt).Transform(aff), 1e-12)
	}
	diff(t, ConicTo{c.B, c.C, c.Weight}, c.Command())
}
