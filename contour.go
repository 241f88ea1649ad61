package contour

import (
	"fmt"
	"iter"
	"slices"
)

// Contour is a single sub-path: a sequence of commands that starts with a
// [MoveTo] and is closed if it ends with a [Close].
//
// Contour is a slice and shares its backing array when copied. Use
// [Contour.Clone] for an independent copy.
//
// Contours are built with the MoveTo, LineTo, QuadTo, ConicTo, CubicTo, ArcTo
// and Close methods, which maintain the following rules:
//
//   - MoveTo discards all commands and starts over at the given point.
//   - Drawing on an empty contour moves to the end point instead.
//   - Drawing to the start point closes the contour automatically.
//   - Close does nothing on empty and already closed contours.
//
// Contours assembled by other means should start with their only MoveTo.
type Contour []Command

// Clone returns a copy of c that doesn't share memory with c.
func (c Contour) Clone() Contour {
	if c == nil {
		return nil
	}
	return slices.Clone(c)
}

// Equal reports whether c and o consist of equal commands.
func (c Contour) Equal(o Contour) bool {
	return slices.Equal(c, o)
}

func (c Contour) Len() int { return len(c) }

func (c Contour) IsEmpty() bool { return len(c) == 0 }

// IsClosed reports whether the last command is a [Close].
func (c Contour) IsClosed() bool {
	return len(c) > 0 && c[len(c)-1].Kind() == CloseKind
}

// Commands returns the commands of the contour.
func (c Contour) Commands() []Command { return c }

// At returns the i-th command.
func (c Contour) At(i int) Command { return c[i] }

// All returns an iterator over the indices and commands of the contour.
func (c Contour) All() iter.Seq2[int, Command] { return slices.All(c) }

// Reset removes all commands.
func (c *Contour) Reset() { *c = (*c)[:0] }

// SetCommands replaces the commands of the contour with a copy of cmds.
func (c *Contour) SetCommands(cmds []Command) {
	*c = append((*c)[:0:0], cmds...)
}

// StartPoint returns the point established by the first command, or false if
// the contour is empty.
func (c Contour) StartPoint() (Point, bool) {
	if len(c) == 0 {
		return Point{}, false
	}
	return EndPoint(c[0])
}

// CurrentPoint returns the point that the next command would draw from. After a
// [Close] that is the start point. It is the zero point for empty contours.
func (c Contour) CurrentPoint() Point {
	start, _ := c.StartPoint()
	for i := len(c) - 1; i >= 0; i-- {
		if c[i].Kind() == CloseKind {
			return start
		}
		if pt, ok := EndPoint(c[i]); ok {
			return pt
		}
	}
	return Point{}
}

// MoveTo resets the contour to a single [MoveTo] command.
func (c *Contour) MoveTo(pt Point) {
	*c = Contour{MoveTo{pt}}
}

// LineTo appends a [LineTo] command.
func (c *Contour) LineTo(pt Point) { c.push(LineTo{pt}, pt) }

// QuadTo appends a [QuadTo] command.
func (c *Contour) QuadTo(ctrl, pt Point) { c.push(QuadTo{ctrl, pt}, pt) }

// ConicTo appends a [ConicTo] command. The weight must be positive.
func (c *Contour) ConicTo(ctrl, pt Point, weight float64) {
	c.push(ConicTo{ctrl, pt, weight}, pt)
}

// CubicTo appends a [CubicTo] command.
func (c *Contour) CubicTo(ctrl1, ctrl2, pt Point) {
	c.push(CubicTo{ctrl1, ctrl2, pt}, pt)
}

// Close appends a [Close] command unless the contour is empty or already
// closed.
func (c *Contour) Close() {
	if len(*c) > 0 && !c.IsClosed() {
		*c = append(*c, Close{})
	}
}

func (c *Contour) push(cmd Command, pt Point) {
	if len(*c) == 0 {
		c.MoveTo(pt)
		return
	}
	*c = append(*c, cmd)
	if start, ok := c.StartPoint(); ok && pt == start {
		c.Close()
	}
}

// Bounds returns the bounding box of all points of the contour, including
// control points. This encloses the contour but is not necessarily tight: it
// is the box of the control polygon, not of the curves. Close commands don't
// contribute. The bounds of an empty contour are the zero rectangle.
func (c Contour) Bounds() Rect {
	b := newBoundsBuilder()
	for _, cmd := range c {
		pts, n := points(cmd)
		b.add(pts[:n]...)
	}
	return b.rect
}

// Direction returns the winding direction of the polygon formed by the end
// points of the commands. Control points are ignored. A [Close] contributes the
// edge back to the start point; open contours are not implicitly closed.
//
// Contours with fewer than three commands, and contours whose polygon has zero
// signed area, have an undefined direction.
//
// Direction panics if a [MoveTo] follows the first command.
func (c Contour) Direction() Direction {
	if len(c) < 3 {
		return UndefinedDirection
	}
	return directionOf(c.crossSum())
}

// crossSum returns twice the signed area of the end point polygon.
func (c Contour) crossSum() float64 {
	start, _ := EndPoint(c[0])
	prev := start
	var sum float64
	for i := 1; i < len(c); i++ {
		switch cmd := c[i].(type) {
		case LineTo, QuadTo, ConicTo, CubicTo:
			pt, _ := EndPoint(cmd)
			sum += prev.Cross(pt)
			prev = pt
		case Close:
			sum += prev.Cross(start)
			prev = start
		default:
			panic(fmt.Sprintf("contour: unexpected %v at index %d", cmd, i))
		}
	}
	return sum
}

// Reverse reverses the direction of the contour in place and returns it.
//
// The first command stays in front and a trailing [Close] stays at the end.
// The remaining commands are reversed and the points of all commands are
// redistributed in reverse order, so the contour traces the same shape in the
// opposite direction. Conic weights travel with their commands.
func (c *Contour) Reverse() *Contour {
	cmds := *c
	if len(cmds) == 0 {
		return c
	}
	var pts []Point
	for _, cmd := range cmds {
		p, n := points(cmd)
		pts = append(pts, p[:n]...)
	}
	end := len(cmds)
	if cmds.IsClosed() {
		end--
	}
	if end > 1 {
		slices.Reverse(cmds[1:end])
	}
	slices.Reverse(pts)
	used := 0
	for i, cmd := range cmds {
		var n int
		cmds[i], n = withPoints(cmd, pts[used:])
		used += n
	}
	if used != len(pts) {
		panic(fmt.Sprintf("contour: reversal consumed %d of %d points", used, len(pts)))
	}
	return c
}

// Reversed returns a reversed copy of the contour. See [Contour.Reverse].
func (c Contour) Reversed() Contour {
	r := c.Clone()
	r.Reverse()
	return r
}

// ConvertConicsToQuadratics replaces every [ConicTo] with the two [QuadTo]
// commands of [Conic.Quadratics]. It reports whether any conic was replaced.
func (c *Contour) ConvertConicsToQuadratics() bool {
	return c.convertConics(Conic.Quadratics)
}

// ConvertConicsToQuadraticsTolerance replaces every [ConicTo] with the [QuadTo]
// commands of [Conic.QuadraticsTolerance]. It reports whether any conic was
// replaced.
func (c *Contour) ConvertConicsToQuadraticsTolerance(tolerance float64) bool {
	return c.convertConics(func(k Conic) []Point {
		return k.QuadraticsTolerance(tolerance)
	})
}

func (c *Contour) convertConics(quadratics func(Conic) []Point) bool {
	n := 0
	for _, cmd := range *c {
		if cmd.Kind() == ConicKind {
			n++
		}
	}
	if n == 0 {
		return false
	}

	out := make(Contour, 0, len(*c)+n)
	var start, pen Point
	for _, cmd := range *c {
		switch cmd := cmd.(type) {
		case ConicTo:
			pts := quadratics(Conic{pen, cmd.Control, cmd.Point, cmd.Weight})
			for i := 0; i+1 < len(pts); i += 2 {
				out = append(out, QuadTo{pts[i], pts[i+1]})
			}
			pen = cmd.Point
			continue
		case MoveTo:
			start = cmd.Point
			pen = start
		case Close:
			pen = start
		default:
			pen, _ = EndPoint(cmd)
		}
		out = append(out, cmd)
	}
	Logger().Debug("converted conics to quadratics",
		"conics", n,
		"commands_before", len(*c),
		"commands_after", len(out))
	*c = out
	return true
}

// Transform returns a transformed copy of the contour. See
// [Contour.ApplyTransform] for a version that modifies the contour in-place.
func (c Contour) Transform(aff Affine) Contour {
	out := make(Contour, len(c))
	for i, cmd := range c {
		out[i] = cmd.Transform(aff)
	}
	return out
}

// ApplyTransform destructively applies an affine transformation to the
// contour.
func (c *Contour) ApplyTransform(aff Affine) {
	for i, cmd := range *c {
		(*c)[i] = cmd.Transform(aff)
	}
}
