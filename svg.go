package contour

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
	// SVG has no conic sections. Conics are approximated by quadratic Béziers
	// using [Conic.QuadraticsTolerance] with this tolerance. A value of 0 or
	// less uses [Conic.Quadratics].
	ConicTolerance float64
}

// SVG converts a sequence of commands to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[Command], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of commands to a string of SVG path commands
// and writes it to w.
//
// See [SVG] for a version that returns a string instead.
//
// The current implementation doesn't take any special care to produce a
// short string (reducing precision, using relative movement).
func WriteSVG(w io.Writer, seq iter.Seq[Command], opts SVGOptions) error {
	space := []byte(" ")
	z := []byte("Z")
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		} else {
			s := strconv.FormatFloat(n, 'f', maxPrec, 64)
			if strings.ContainsRune(s, '.') {
				s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
			}
			if s == "-0" {
				s = "0"
			}
			return s
		}
	}
	quad := func(ctrl, pt Point) {
		writef("Q%s,%s %s,%s",
			format(ctrl.X), format(ctrl.Y),
			format(pt.X), format(pt.Y))
	}

	var start, pen Point
	first := true
	for cmd := range seq {
		if err != nil {
			return err
		}
		if !first {
			write(space)
		}
		first = false
		switch cmd := cmd.(type) {
		case MoveTo:
			writef("M%s,%s", format(cmd.Point.X), format(cmd.Point.Y))
			start, pen = cmd.Point, cmd.Point
		case LineTo:
			writef("L%s,%s", format(cmd.Point.X), format(cmd.Point.Y))
			pen = cmd.Point
		case QuadTo:
			quad(cmd.Control, cmd.Point)
			pen = cmd.Point
		case ConicTo:
			k := Conic{pen, cmd.Control, cmd.Point, cmd.Weight}
			var pts []Point
			if opts.ConicTolerance > 0 {
				pts = k.QuadraticsTolerance(opts.ConicTolerance)
			} else {
				pts = k.Quadratics()
			}
			for i := 0; i+1 < len(pts); i += 2 {
				if i > 0 {
					write(space)
				}
				quad(pts[i], pts[i+1])
			}
			pen = cmd.Point
		case CubicTo:
			writef("C%s,%s %s,%s %s,%s",
				format(cmd.Control1.X), format(cmd.Control1.Y),
				format(cmd.Control2.X), format(cmd.Control2.Y),
				format(cmd.Point.X), format(cmd.Point.Y))
			pen = cmd.Point
		case Close:
			write(z)
			pen = start
		default:
			panic(fmt.Sprintf("contour: unhandled command %v", cmd))
		}
	}
	return err
}

// SVG converts the contour to an SVG path string representation.
func (c Contour) SVG(opts SVGOptions) string {
	return SVG(slices.Values(c), opts)
}

// WriteSVG writes the SVG path string representation of the contour to w.
func (c Contour) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, slices.Values(c), opts)
}

// String returns the contour as SVG path data with default options.
func (c Contour) String() string {
	return c.SVG(SVGOptions{})
}

// SVG converts the shape to an SVG path string representation. Each contour
// becomes a subpath.
func (s Shape) SVG(opts SVGOptions) string {
	return SVG(s.values(), opts)
}

// WriteSVG writes the SVG path string representation of the shape to w.
func (s Shape) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, s.values(), opts)
}

func (s Shape) String() string {
	return s.SVG(SVGOptions{})
}

func (s Shape) values() iter.Seq[Command] {
	return func(yield func(Command) bool) {
		for _, cmd := range s.Commands() {
			if !yield(cmd) {
				return
			}
		}
	}
}
