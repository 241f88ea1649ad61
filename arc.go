package contour

import (
	"math"
)

// ArcTo appends an elliptical arc from the current point to pt, using the
// endpoint parametrization of SVG: the ellipse has the radii rx and ry, its x
// axis is rotated by xRotation radians, and largeArc and sweep select one of
// the four candidate arcs. A positive sweep runs in the direction of positive
// angles, which is clockwise in a y-down coordinate system.
//
// The arc is drawn with [ConicTo] commands spanning at most 90° each. Radii
// that are too small to reach pt are scaled up; a zero radius draws a line.
// Nothing is drawn if pt is the current point.
//
// See https://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes
func (c *Contour) ArcTo(radii Vec2, xRotation float64, largeArc, sweep bool, pt Point) {
	if len(*c) == 0 {
		c.MoveTo(pt)
		return
	}
	p0 := c.CurrentPoint()
	if p0 == pt {
		return
	}
	rx, ry := math.Abs(radii.X), math.Abs(radii.Y)
	if rx == 0 || ry == 0 {
		c.LineTo(pt)
		return
	}

	// Work in a coordinate system centered between the end points, with the
	// ellipse axes aligned to the coordinate axes.
	sin, cos := math.Sincos(xRotation)
	dx := (p0.X - pt.X) / 2
	dy := (p0.Y - pt.Y) / 2
	x1 := cos*dx + sin*dy
	y1 := -sin*dx + cos*dy

	if lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := math.Sqrt(max(num/den, 0))
	if largeArc == sweep {
		coef = -coef
	}
	cx := coef * rx * y1 / ry
	cy := -coef * ry * x1 / rx
	center := Pt(
		cos*cx-sin*cy+(p0.X+pt.X)/2,
		sin*cx+cos*cy+(p0.Y+pt.Y)/2,
	)

	th0 := math.Atan2((y1-cy)/ry, (x1-cx)/rx)
	th1 := math.Atan2((-y1-cy)/ry, (-x1-cx)/rx)
	delta := th1 - th0
	if sweep && delta < 0 {
		delta += 2 * math.Pi
	} else if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	}
	c.appendArc(center, Vec(rx, ry), xRotation, th0, delta, pt)
}

// appendArc draws the arc of an ellipse from startAngle over sweepAngle,
// ending exactly at end.
func (c *Contour) appendArc(center Point, radii Vec2, xRotation, startAngle, sweepAngle float64, end Point) {
	// Allow for rounding in quarter and half turns.
	n := max(int(math.Ceil(math.Abs(sweepAngle)/(math.Pi/2)-1e-9)), 1)
	step := sweepAngle / float64(n)
	w := math.Cos(step / 2)
	aff := Translate(Vec2(center)).
		Mul(Rotate(xRotation)).
		Mul(Scale(radii.X, radii.Y))

	th := startAngle
	for i := range n {
		// The control point of a circular arc is where the tangents at its end
		// points meet.
		ctrl := Point(unitVec(th + step/2).Div(w)).Transform(aff)
		th += step
		pt := Point(unitVec(th)).Transform(aff)
		if i == n-1 {
			pt = end
		}
		c.ConicTo(ctrl, pt, w)
	}
}

func unitVec(th float64) Vec2 {
	sin, cos := math.Sincos(th)
	return Vec2{cos, sin}
}
