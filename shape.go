package contour

import (
	"iter"
	"slices"
)

// Shape is a compound figure made of contours, such as a glyph with holes or
// the result of parsing SVG path data.
//
// MoveTo always starts a new contour. The other drawing methods act on the
// last contour and do nothing if the shape has no contours.
//
// Like [Contour], Shape is a slice and shares memory when copied; use
// [Shape.Clone] for an independent copy.
type Shape []Contour

// Index identifies a command within a [Shape].
type Index struct {
	Contour int
	Command int
}

// Clone returns a deep copy of s.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	for i, c := range s {
		out[i] = c.Clone()
	}
	return out
}

// Equal reports whether s and o consist of equal contours.
func (s Shape) Equal(o Shape) bool {
	return slices.EqualFunc(s, o, Contour.Equal)
}

// Len returns the number of contours.
func (s Shape) Len() int { return len(s) }

func (s Shape) IsEmpty() bool { return len(s) == 0 }

// Contours returns the contours of the shape.
func (s Shape) Contours() []Contour { return s }

// Paths is an alias for [Shape.Contours].
func (s Shape) Paths() []Contour { return s }

// At returns a pointer to the i-th contour. The pointer is invalidated by
// methods that add contours.
func (s Shape) At(i int) *Contour { return &s[i] }

// Last returns a pointer to the last contour, or nil if the shape is empty.
func (s Shape) Last() *Contour {
	if len(s) == 0 {
		return nil
	}
	return &s[len(s)-1]
}

// SetContours replaces the contours of the shape with a deep copy of cs.
func (s *Shape) SetContours(cs []Contour) {
	*s = Shape(cs).Clone()
}

// Reset removes all contours.
func (s *Shape) Reset() { *s = (*s)[:0] }

// Commands returns an iterator over all commands of all contours, in order.
func (s Shape) Commands() iter.Seq2[Index, Command] {
	return func(yield func(Index, Command) bool) {
		for i, c := range s {
			for j, cmd := range c {
				if !yield(Index{i, j}, cmd) {
					return
				}
			}
		}
	}
}

// MoveTo starts a new contour at pt.
func (s *Shape) MoveTo(pt Point) {
	*s = append(*s, Contour{MoveTo{pt}})
}

// LineTo calls [Contour.LineTo] on the last contour.
func (s *Shape) LineTo(pt Point) {
	if c := s.Last(); c != nil {
		c.LineTo(pt)
	}
}

// QuadTo calls [Contour.QuadTo] on the last contour.
func (s *Shape) QuadTo(ctrl, pt Point) {
	if c := s.Last(); c != nil {
		c.QuadTo(ctrl, pt)
	}
}

// ConicTo calls [Contour.ConicTo] on the last contour.
func (s *Shape) ConicTo(ctrl, pt Point, weight float64) {
	if c := s.Last(); c != nil {
		c.ConicTo(ctrl, pt, weight)
	}
}

// CubicTo calls [Contour.CubicTo] on the last contour.
func (s *Shape) CubicTo(ctrl1, ctrl2, pt Point) {
	if c := s.Last(); c != nil {
		c.CubicTo(ctrl1, ctrl2, pt)
	}
}

// ArcTo calls [Contour.ArcTo] on the last contour.
func (s *Shape) ArcTo(radii Vec2, xRotation float64, largeArc, sweep bool, pt Point) {
	if c := s.Last(); c != nil {
		c.ArcTo(radii, xRotation, largeArc, sweep, pt)
	}
}

// Close calls [Contour.Close] on the last contour.
func (s *Shape) Close() {
	if c := s.Last(); c != nil {
		c.Close()
	}
}

// Bounds returns the union of the bounds of all non-empty contours. See
// [Contour.Bounds].
func (s Shape) Bounds() Rect {
	b := newBoundsBuilder()
	for _, c := range s {
		if len(c) > 0 {
			b.addRect(c.Bounds())
		}
	}
	return b.rect
}

// Directions returns the direction of every contour.
func (s Shape) Directions() []Direction {
	out := make([]Direction, len(s))
	for i, c := range s {
		out[i] = c.Direction()
	}
	return out
}

// Reverse reverses every contour in place. The order of the contours is
// unchanged.
func (s *Shape) Reverse() *Shape {
	for i := range *s {
		(*s)[i].Reverse()
	}
	return s
}

// Reversed returns a copy of s with every contour reversed.
func (s Shape) Reversed() Shape {
	r := s.Clone()
	r.Reverse()
	return r
}

// ConvertConicsToQuadratics calls [Contour.ConvertConicsToQuadratics] on every
// contour and reports whether any of them changed.
func (s *Shape) ConvertConicsToQuadratics() bool {
	changed := false
	for i := range *s {
		if (*s)[i].ConvertConicsToQuadratics() {
			changed = true
		}
	}
	return changed
}

// ConvertConicsToQuadraticsTolerance calls
// [Contour.ConvertConicsToQuadraticsTolerance] on every contour and reports
// whether any of them changed.
func (s *Shape) ConvertConicsToQuadraticsTolerance(tolerance float64) bool {
	changed := false
	for i := range *s {
		if (*s)[i].ConvertConicsToQuadraticsTolerance(tolerance) {
			changed = true
		}
	}
	return changed
}

// Transform returns a transformed copy of the shape.
func (s Shape) Transform(aff Affine) Shape {
	out := make(Shape, len(s))
	for i, c := range s {
		out[i] = c.Transform(aff)
	}
	return out
}

// ApplyTransform destructively applies an affine transformation to every
// contour.
func (s *Shape) ApplyTransform(aff Affine) {
	for i := range *s {
		(*s)[i].ApplyTransform(aff)
	}
}
