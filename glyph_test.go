package contour

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

func seg(op sfnt.SegmentOp, pts ...fixed.Point26_6) sfnt.Segment {
	s := sfnt.Segment{Op: op}
	copy(s.Args[:], pts)
	return s
}

func TestPtFixed(t *testing.T) {
	diff(t, Pt(1.5, -2.25), PtFixed(fixed.Point26_6{X: 96, Y: -144}))
}

func TestShapeFromSegments(t *testing.T) {
	segs := sfnt.Segments{
		seg(sfnt.SegmentOpMoveTo, fixed.P(0, 0)),
		seg(sfnt.SegmentOpLineTo, fixed.P(10, 0)),
		seg(sfnt.SegmentOpQuadTo, fixed.P(10, 10), fixed.P(0, 10)),
		seg(sfnt.SegmentOpMoveTo, fixed.P(20, 0)),
		seg(sfnt.SegmentOpCubeTo, fixed.P(20, 5), fixed.P(25, 10), fixed.P(30, 10)),
		seg(sfnt.SegmentOpLineTo, fixed.P(20, 0)),
	}
	want := Shape{
		{
			MoveTo{Pt(0, 0)},
			LineTo{Pt(10, 0)},
			QuadTo{Pt(10, 10), Pt(0, 10)},
			Close{},
		},
		{
			MoveTo{Pt(20, 0)},
			CubicTo{Pt(20, 5), Pt(25, 10), Pt(30, 10)},
			LineTo{Pt(20, 0)},
			Close{},
		},
	}
	diff(t, want, ShapeFromSegments(segs))
}

func TestAppendSegments(t *testing.T) {
	var s Shape
	s.MoveTo(Pt(-1, -1))
	s.LineTo(Pt(-2, -1))
	AppendSegments(&s, sfnt.Segments{
		// Nothing to draw from yet.
		seg(sfnt.SegmentOpLineTo, fixed.P(5, 5)),
		seg(sfnt.SegmentOpMoveTo, fixed.P(1, 1)),
		seg(sfnt.SegmentOpLineTo, fixed.P(2, 1)),
	})
	want := Shape{
		{MoveTo{Pt(-1, -1)}, LineTo{Pt(-2, -1)}},
		{MoveTo{Pt(1, 1)}, LineTo{Pt(2, 1)}, Close{}},
	}
	diff(t, want, s)

	AppendSegments(&s, nil)
	if s.Len() != 2 {
		t.Errorf("appending no segments changed the shape: %v", s)
	}
}

func TestLoadGlyph(t *testing.T) {
	f, err := sfnt.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	var buf sfnt.Buffer
	x, err := f.GlyphIndex(&buf, 'o')
	if err != nil {
		t.Fatal(err)
	}
	s, err := LoadGlyph(f, &buf, x, fixed.I(100))
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 2 {
		t.Fatalf("got %d contours, want 2", s.Len())
	}
	for i, c := range s {
		if !c.IsClosed() {
			t.Errorf("contour %d isn't closed", i)
		}
	}
	dirs := s.Directions()
	if dirs[0] == UndefinedDirection || dirs[1] == UndefinedDirection || dirs[0] == dirs[1] {
		t.Errorf("got directions %v, want two opposite ones", dirs)
	}

	// The outer contour contains the counter.
	outer, inner := s[0].Bounds(), s[1].Bounds()
	if outer.Size().Area() < inner.Size().Area() {
		outer, inner = inner, outer
	}
	if outer.Union(inner) != outer {
		t.Errorf("%v doesn't contain %v", outer, inner)
	}
	// Glyphs sit on the baseline, above it in y-down coordinates.
	if b := s.Bounds(); b.Y1 > 5 || b.Y0 > -10 {
		t.Errorf("unexpected bounds %v", b)
	}
}
