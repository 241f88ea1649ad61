package contour

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestParseSVG(t *testing.T) {
	tests := []struct {
		name string
		d    string
		want Shape
	}{
		{"empty", "", nil},
		{"blank", " \n\t", nil},
		{"absolute", "M0,0 L10,0 L10,10 L0,10 Z", Shape{cwSquare}},
		{"relative", "m0,0 l10,0 l0,10 l-10,0 z", Shape{cwSquare}},
		{"implicit", "M0 0 10 0 10 10 0 10z", Shape{cwSquare}},
		{"implicit relative", "m0 0 10 0 0 10 -10 0z", Shape{cwSquare}},
		{"horizontal vertical", "M0,0 H10 V10 H0 Z", Shape{cwSquare}},
		{"horizontal vertical relative", "m0,0 h10 v10 h-10 z", Shape{cwSquare}},
		{"compact", "M.5.5L-1-1", Shape{{MoveTo{Pt(0.5, 0.5)}, LineTo{Pt(-1, -1)}}}},
		{"exponent", "M1e1,0 L2E-1,0", Shape{{MoveTo{Pt(10, 0)}, LineTo{Pt(0.2, 0)}}}},
		{
			"subpaths",
			"M0,0 L1,0 L1,1 Z M5,5 L6,5",
			Shape{
				{MoveTo{Pt(0, 0)}, LineTo{Pt(1, 0)}, LineTo{Pt(1, 1)}, Close{}},
				{MoveTo{Pt(5, 5)}, LineTo{Pt(6, 5)}},
			},
		},
		{
			"relative moveto after close",
			"m1,1 l1,0 l0,1 z m1,1 l1,0",
			Shape{
				{MoveTo{Pt(1, 1)}, LineTo{Pt(2, 1)}, LineTo{Pt(2, 2)}, Close{}},
				{MoveTo{Pt(2, 2)}, LineTo{Pt(3, 2)}},
			},
		},
		{
			"drawing after close",
			"M1,1 l1,0 l0,1 z l1,1",
			Shape{
				{MoveTo{Pt(1, 1)}, LineTo{Pt(2, 1)}, LineTo{Pt(2, 2)}, Close{}},
				{MoveTo{Pt(1, 1)}, LineTo{Pt(2, 2)}},
			},
		},
		{
			"lone moveto",
			"M1,1 M2,2 L3,3",
			Shape{{MoveTo{Pt(2, 2)}, LineTo{Pt(3, 3)}}},
		},
		{
			"quadratics",
			"M0,0 Q5,10 10,0 T20,0 t10,0",
			Shape{{
				MoveTo{Pt(0, 0)},
				QuadTo{Pt(5, 10), Pt(10, 0)},
				QuadTo{Pt(15, -10), Pt(20, 0)},
				QuadTo{Pt(25, 10), Pt(30, 0)},
			}},
		},
		{
			"smooth quadratic without quadratic",
			"M0,0 L5,5 T10,0",
			Shape{{MoveTo{Pt(0, 0)}, LineTo{Pt(5, 5)}, QuadTo{Pt(5, 5), Pt(10, 0)}}},
		},
		{
			"cubics",
			"M0,0 C0,10 10,10 10,0 S20,-10 20,0",
			Shape{{
				MoveTo{Pt(0, 0)},
				CubicTo{Pt(0, 10), Pt(10, 10), Pt(10, 0)},
				CubicTo{Pt(10, -10), Pt(20, -10), Pt(20, 0)},
			}},
		},
		{
			"cubics relative",
			"m0,0 c0,10 10,10 10,0 s10,-10 10,0",
			Shape{{
				MoveTo{Pt(0, 0)},
				CubicTo{Pt(0, 10), Pt(10, 10), Pt(10, 0)},
				CubicTo{Pt(10, -10), Pt(20, -10), Pt(20, 0)},
			}},
		},
		{
			"smooth cubic after quadratic",
			"M0,0 Q5,5 10,0 S20,5 20,0",
			Shape{{
				MoveTo{Pt(0, 0)},
				QuadTo{Pt(5, 5), Pt(10, 0)},
				CubicTo{Pt(10, 0), Pt(20, 5), Pt(20, 0)},
			}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSVG(tt.d)
			if err != nil {
				t.Fatal(err)
			}
			diff(t, tt.want, *got)
		})
	}
}

func TestParseSVGArcs(t *testing.T) {
	var want Contour
	want.MoveTo(Pt(0, 0))
	want.ArcTo(Vec(5, 5), 0, false, true, Pt(10, 0))

	for _, d := range []string{
		"M0,0 A5,5 0 0,1 10,0",
		"M0,0 a5 5 0 0110 0",
	} {
		got, err := ParseSVG(d)
		if err != nil {
			t.Fatalf("%q: %s", d, err)
		}
		diff(t, Shape{want}, *got)
	}

	// The rotation is in degrees.
	want.MoveTo(Pt(0, 0))
	want.ArcTo(Vec(4, 2), math.Pi/6, true, false, Pt(3, 1))
	got, err := ParseSVG("M0,0 A4,2 30 1 0 3,1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 1 {
		t.Fatalf("got %d contours", got.Len())
	}
	diff(t, []Command(want), []Command((*got)[0]), approx(1e-12))
}

func TestParseSVGErrors(t *testing.T) {
	tests := []struct {
		d      string
		offset string
	}{
		{"L0,0", "offset 0"},
		{"0,0", "offset 0"},
		{"M0,0 X1", "offset 5"},
		{"M0", "offset 2"},
		{"M0,0 L1", "offset 7"},
		{"M0,0 L1,1 2", "offset 11"},
		{"M0,0 A1,1 0 2 0 1,1", "offset 12"},
		{"M0,0 Z 1", "offset 7"},
		{"M0,0 L1,1 #", "offset 10"},
	}
	for _, tt := range tests {
		_, err := ParseSVG(tt.d)
		if !errors.Is(err, ErrInvalidPathData) {
			t.Errorf("%q: got error %v, want %v", tt.d, err, ErrInvalidPathData)
			continue
		}
		if !strings.Contains(err.Error(), tt.offset) {
			t.Errorf("%q: error %q doesn't mention %s", tt.d, err, tt.offset)
		}
	}
}

func TestParseSVGRoundTrip(t *testing.T) {
	shapes := []Shape{
		{cwSquare},
		{ccwSquare, cwSquare.Transform(Translate(Vec(20, 0)))},
		{{
			MoveTo{Pt(0.5, -3)},
			QuadTo{Pt(1, 2), Pt(3, 4)},
			CubicTo{Pt(5, 6), Pt(7, 8), Pt(9, 10)},
			LineTo{Pt(-1.25, 1e-3)},
		}},
	}
	for _, s := range shapes {
		got, err := ParseSVG(s.SVG(SVGOptions{}))
		if err != nil {
			t.Fatal(err)
		}
		diff(t, s, *got)
	}
}
