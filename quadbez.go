package contour

// QuadBez is a quadratic Bézier segment. It is what [Conic.QuadBezs] produces
// and what a [QuadTo] command draws from the current point.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	pm := q.Eval(0.5)
	return QuadBez{q.P0, q.P0.Midpoint(q.P1), pm},
		QuadBez{pm, q.P1.Midpoint(q.P2), q.P2}
}

func (q QuadBez) Subsegment(t0 float64, t1 float64) QuadBez {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)
	p1 := p0.Translate(q.P1.Sub(q.P0).Lerp(q.P2.Sub(q.P1), t0).Mul(t1 - t0))
	return QuadBez{p0, p1, p2}
}

// ControlBox returns the bounding box of the control polygon, which encloses
// the curve.
func (q QuadBez) ControlBox() Rect {
	return NewRectFromPoints(q.P0, q.P2).UnionPoint(q.P1)
}

func (q QuadBez) Transform(aff Affine) QuadBez {
	return QuadBez{
		q.P0.Transform(aff),
		q.P1.Transform(aff),
		q.P2.Transform(aff),
	}
}

// Command returns the [QuadTo] command that draws q from its start point.
func (q QuadBez) Command() QuadTo {
	return QuadTo{Control: q.P1, Point: q.P2}
}
