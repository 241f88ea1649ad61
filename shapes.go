package contour

import "math"

// AddRect adds the rectangle r as a new closed contour, starting at its
// minimum corner. In a y-down coordinate system the contour runs clockwise.
func (s *Shape) AddRect(r Rect) {
	r = r.Abs()
	s.MoveTo(Pt(r.X0, r.Y0))
	c := s.Last()
	c.LineTo(Pt(r.X1, r.Y0))
	c.LineTo(Pt(r.X1, r.Y1))
	c.LineTo(Pt(r.X0, r.Y1))
	c.Close()
}

// AddCircle adds a circle as a new closed contour made of four conics. See
// [Shape.AddEllipse].
func (s *Shape) AddCircle(center Point, radius float64) {
	s.AddEllipse(center, Vec(radius, radius))
}

// AddEllipse adds an axis-aligned ellipse as a new closed contour made of four
// quarter-ellipse conics with weight √2/2. The contour starts at the
// rightmost point and runs in the direction of positive angles.
func (s *Shape) AddEllipse(center Point, radii Vec2) {
	rx, ry := math.Abs(radii.X), math.Abs(radii.Y)
	const w = math.Sqrt2 / 2
	x0, x1 := center.X-rx, center.X+rx
	y0, y1 := center.Y-ry, center.Y+ry

	s.MoveTo(Pt(x1, center.Y))
	c := s.Last()
	c.ConicTo(Pt(x1, y1), Pt(center.X, y1), w)
	c.ConicTo(Pt(x0, y1), Pt(x0, center.Y), w)
	c.ConicTo(Pt(x0, y0), Pt(center.X, y0), w)
	c.ConicTo(Pt(x1, y0), Pt(x1, center.Y), w)
	c.Close()
}

// AddRoundedRect adds a rectangle with circular corners as a new closed
// contour. The radius is limited to half the shorter side; a radius of zero
// adds a plain rectangle.
func (s *Shape) AddRoundedRect(r Rect, radius float64) {
	r = r.Abs()
	radius = min(math.Abs(radius), r.Width()/2, r.Height()/2)
	if radius == 0 {
		s.AddRect(r)
		return
	}
	const w = math.Sqrt2 / 2
	s.MoveTo(Pt(r.X0+radius, r.Y0))
	c := s.Last()
	c.lineToIfMoved(Pt(r.X1-radius, r.Y0))
	c.ConicTo(Pt(r.X1, r.Y0), Pt(r.X1, r.Y0+radius), w)
	c.lineToIfMoved(Pt(r.X1, r.Y1-radius))
	c.ConicTo(Pt(r.X1, r.Y1), Pt(r.X1-radius, r.Y1), w)
	c.lineToIfMoved(Pt(r.X0+radius, r.Y1))
	c.ConicTo(Pt(r.X0, r.Y1), Pt(r.X0, r.Y1-radius), w)
	c.lineToIfMoved(Pt(r.X0, r.Y0+radius))
	c.ConicTo(Pt(r.X0, r.Y0), Pt(r.X0+radius, r.Y0), w)
	c.Close()
}

// lineToIfMoved skips zero-length lines, which would otherwise close the
// contour early when they end at the start point.
func (c *Contour) lineToIfMoved(pt Point) {
	if c.CurrentPoint() != pt {
		c.LineTo(pt)
	}
}
