package contour

import (
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// PtFixed converts a 26.6 fixed-point point to a [Point].
func PtFixed(p fixed.Point26_6) Point {
	return Pt(float64(p.X)/64, float64(p.Y)/64)
}

// AppendSegments appends a glyph outline, as returned by
// [sfnt.Font.LoadGlyph], to s. Every contour of the outline becomes a closed
// contour of s. The coordinates are kept as they are, which for sfnt means
// that the y axis points down.
func AppendSegments(s *Shape, segs sfnt.Segments) {
	opened := false
	for _, seg := range segs {
		pt := PtFixed(seg.Args[0])
		if seg.Op == sfnt.SegmentOpMoveTo {
			if opened {
				s.Close()
			}
			s.MoveTo(pt)
			opened = true
			continue
		}
		if !opened {
			// Outlines start with a move. Don't draw onto a contour of s
			// that this outline didn't open.
			continue
		}
		switch seg.Op {
		case sfnt.SegmentOpLineTo:
			s.LineTo(pt)
		case sfnt.SegmentOpQuadTo:
			s.QuadTo(pt, PtFixed(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			s.CubicTo(pt, PtFixed(seg.Args[1]), PtFixed(seg.Args[2]))
		}
	}
	if opened {
		s.Close()
	}
}

// ShapeFromSegments returns a new shape holding a glyph outline. See
// [AppendSegments].
func ShapeFromSegments(segs sfnt.Segments) Shape {
	var s Shape
	AppendSegments(&s, segs)
	return s
}

// LoadGlyph loads the outline of glyph x of f at the given size in pixels
// per em.
func LoadGlyph(f *sfnt.Font, buf *sfnt.Buffer, x sfnt.GlyphIndex, ppem fixed.Int26_6) (Shape, error) {
	segs, err := f.LoadGlyph(buf, x, ppem, nil)
	if err != nil {
		return nil, err
	}
	return ShapeFromSegments(segs), nil
}
