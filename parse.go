package contour

import (
	"errors"
	"fmt"
	"math"

	"github.com/tdewolff/parse/v2/strconv"
)

// ErrInvalidPathData is returned, wrapped, by [ParseSVG] for malformed input.
var ErrInvalidPathData = errors.New("contour: invalid path data")

// numbers of arguments per SVG path command
var svgArgs = [...]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1,
	'C': 6, 'S': 4, 'Q': 4, 'T': 2,
	'A': 7, 'Z': 0,
}

// ParseSVG parses SVG path data, such as the d attribute of a <path>
// element, into a shape. Every subpath becomes a contour.
//
// All commands of the SVG grammar are supported, in their absolute and
// relative forms, including implicit repetition. Elliptical arcs are
// converted to conics with [Contour.ArcTo]; their x-axis rotation is given
// in degrees, as in SVG.
//
// SVG allows drawing to continue after a subpath has been closed. Such
// drawing starts a new contour at the start point of the closed one. Since
// [Contour] closes itself when drawing returns to its start point, the same
// applies to subpaths that revisit their start point before their end.
//
// Errors wrap [ErrInvalidPathData] and report the byte offset of the
// problem.
func ParseSVG(d string) (*Shape, error) {
	p := svgParser{b: []byte(d)}
	s, err := p.parse()
	if err != nil {
		return nil, err
	}
	n := 0
	for _, c := range s {
		n += len(c)
	}
	Logger().Debug("parsed svg path data",
		"bytes", len(d),
		"contours", len(s),
		"commands", n)
	return &s, nil
}

type svgParser struct {
	b []byte
	i int

	shape Shape
	// start point of the current subpath
	start Point
	pen   Point
	// reflected control points for S and T
	lastCubic Point
	lastQuad  Point
}

func (p *svgParser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s at offset %d", ErrInvalidPathData, fmt.Sprintf(format, args...), p.i)
}

func (p *svgParser) skipSeparators() {
	for p.i < len(p.b) {
		switch p.b[p.i] {
		case ' ', ',', '\t', '\n', '\r', '\f':
			p.i++
		default:
			return
		}
	}
}

func (p *svgParser) atNumber() bool {
	if p.i >= len(p.b) {
		return false
	}
	c := p.b[p.i]
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}

func (p *svgParser) number(cmd byte) (float64, error) {
	f, n := strconv.ParseFloat(p.b[p.i:])
	if n == 0 {
		return 0, p.errorf("expected number for command %q", cmd)
	}
	p.i += n
	p.skipSeparators()
	return f, nil
}

func (p *svgParser) flag(cmd byte) (bool, error) {
	if p.i < len(p.b) {
		switch p.b[p.i] {
		case '0':
			p.i++
			p.skipSeparators()
			return false, nil
		case '1':
			p.i++
			p.skipSeparators()
			return true, nil
		}
	}
	return false, p.errorf("expected flag 0 or 1 for command %q", cmd)
}

func (p *svgParser) parse() (Shape, error) {
	p.skipSeparators()
	if p.i == len(p.b) {
		return nil, nil
	}
	if c := p.b[p.i]; c != 'M' && c != 'm' {
		return nil, p.errorf("path data must start with a moveto, not %q", c)
	}

	var prev byte
	var args [7]float64
	for {
		p.skipSeparators()
		if p.i >= len(p.b) {
			break
		}

		cmd := prev
		if !p.atNumber() {
			cmd = p.b[p.i]
			if u := cmd &^ 0x20; int(u) >= len(svgArgs) || (svgArgs[u] == 0 && u != 'Z') {
				return nil, p.errorf("unknown command %q", cmd)
			}
			p.i++
			p.skipSeparators()
		} else if prev == 0 || prev == 'Z' || prev == 'z' {
			return nil, p.errorf("unexpected number")
		}
		upper := cmd &^ 0x20

		for j := range svgArgs[upper] {
			var err error
			if upper == 'A' && (j == 3 || j == 4) {
				var b bool
				b, err = p.flag(cmd)
				args[j] = 0
				if b {
					args[j] = 1
				}
			} else {
				args[j], err = p.number(cmd)
			}
			if err != nil {
				return nil, err
			}
		}

		p.apply(cmd, args)
		prev = cmd
		// Coordinate pairs following a moveto are implicit linetos.
		switch cmd {
		case 'M':
			prev = 'L'
		case 'm':
			prev = 'l'
		}
	}
	return p.shape, nil
}

// contour returns the contour that drawing commands continue.
func (p *svgParser) contour() *Contour {
	c := p.shape.Last()
	if c.IsClosed() {
		p.shape.MoveTo(p.start)
		c = p.shape.Last()
	}
	return c
}

func (p *svgParser) apply(cmd byte, args [7]float64) {
	rel := cmd >= 'a'
	abs := func(x, y float64) Point {
		if rel {
			return Pt(p.pen.X+x, p.pen.Y+y)
		}
		return Pt(x, y)
	}

	var lastCubic, lastQuad *Point
	switch cmd &^ 0x20 {
	case 'M':
		pt := abs(args[0], args[1])
		if c := p.shape.Last(); c != nil && len(*c) == 1 {
			// A lone moveto draws nothing.
			c.MoveTo(pt)
		} else {
			p.shape.MoveTo(pt)
		}
		p.start, p.pen = pt, pt
	case 'Z':
		p.shape.Last().Close()
		p.pen = p.start
	case 'L':
		p.pen = abs(args[0], args[1])
		p.contour().LineTo(p.pen)
	case 'H':
		x := args[0]
		if rel {
			x += p.pen.X
		}
		p.pen = Pt(x, p.pen.Y)
		p.contour().LineTo(p.pen)
	case 'V':
		y := args[0]
		if rel {
			y += p.pen.Y
		}
		p.pen = Pt(p.pen.X, y)
		p.contour().LineTo(p.pen)
	case 'C':
		c1 := abs(args[0], args[1])
		c2 := abs(args[2], args[3])
		pt := abs(args[4], args[5])
		p.contour().CubicTo(c1, c2, pt)
		lastCubic, p.pen = &c2, pt
	case 'S':
		c1 := p.reflect(p.lastCubic)
		c2 := abs(args[0], args[1])
		pt := abs(args[2], args[3])
		p.contour().CubicTo(c1, c2, pt)
		lastCubic, p.pen = &c2, pt
	case 'Q':
		ctrl := abs(args[0], args[1])
		pt := abs(args[2], args[3])
		p.contour().QuadTo(ctrl, pt)
		lastQuad, p.pen = &ctrl, pt
	case 'T':
		ctrl := p.reflect(p.lastQuad)
		pt := abs(args[0], args[1])
		p.contour().QuadTo(ctrl, pt)
		lastQuad, p.pen = &ctrl, pt
	case 'A':
		pt := abs(args[5], args[6])
		rot := args[2] * math.Pi / 180
		p.contour().ArcTo(Vec(args[0], args[1]), rot, args[3] == 1, args[4] == 1, pt)
		p.pen = pt
	}
	// S and T only reflect the control points of their own kind. Any other
	// command leaves the pen, which reflects onto itself.
	p.lastCubic, p.lastQuad = p.pen, p.pen
	if lastCubic != nil {
		p.lastCubic = *lastCubic
	}
	if lastQuad != nil {
		p.lastQuad = *lastQuad
	}
}

// reflect mirrors a control point of the previous command about the pen.
func (p *svgParser) reflect(ctrl Point) Point {
	return p.pen.Translate(p.pen.Sub(ctrl))
}
