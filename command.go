package contour

import (
	"fmt"
)

type CommandKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// contour.
	MoveKind CommandKind = iota + 1
	// Draw a line from the current point to the point.
	LineKind
	// Draw a quadratic Bézier from the current point.
	QuadraticKind
	// Draw a rational quadratic Bézier from the current point.
	ConicKind
	// Draw a cubic Bézier from the current point.
	CubicKind
	// Close off the contour.
	CloseKind
)

func (k CommandKind) String() string {
	switch k {
	case MoveKind:
		return "MoveTo"
	case LineKind:
		return "LineTo"
	case QuadraticKind:
		return "QuadTo"
	case ConicKind:
		return "ConicTo"
	case CubicKind:
		return "CubicTo"
	case CloseKind:
		return "Close"
	default:
		return fmt.Sprintf("CommandKind(%d)", int(k))
	}
}

// Command is a single drawing instruction of a [Contour]. It is implemented by
// [MoveTo], [LineTo], [QuadTo], [ConicTo], [CubicTo] and [Close], and by no
// other types.
//
// All implementations are comparable values. Two commands are equal, as
// reported by ==, if they are of the same kind and all of their fields are
// exactly equal.
type Command interface {
	Kind() CommandKind
	// Transform returns the command with all of its points transformed.
	Transform(aff Affine) Command

	isCommand()
}

var (
	_ Command = MoveTo{}
	_ Command = LineTo{}
	_ Command = QuadTo{}
	_ Command = ConicTo{}
	_ Command = CubicTo{}
	_ Command = Close{}
)

// MoveTo establishes the start point of a contour.
type MoveTo struct {
	Point Point
}

// LineTo draws a straight line.
type LineTo struct {
	Point Point
}

// QuadTo draws a quadratic Bézier.
type QuadTo struct {
	Control Point
	Point   Point
}

// ConicTo draws a rational quadratic Bézier. A weight of 1 describes the same
// curve as a [QuadTo] with the same points; weights below 1 describe
// elliptical arcs and weights above 1 hyperbolic ones.
type ConicTo struct {
	Control Point
	Point   Point
	Weight  float64
}

// CubicTo draws a cubic Bézier.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

// Close draws a line back to the start point of the contour, if necessary, and
// marks the contour as closed.
type Close struct{}

func (MoveTo) Kind() CommandKind  { return MoveKind }
func (LineTo) Kind() CommandKind  { return LineKind }
func (QuadTo) Kind() CommandKind  { return QuadraticKind }
func (ConicTo) Kind() CommandKind { return ConicKind }
func (CubicTo) Kind() CommandKind { return CubicKind }
func (Close) Kind() CommandKind   { return CloseKind }

func (MoveTo) isCommand()  {}
func (LineTo) isCommand()  {}
func (QuadTo) isCommand()  {}
func (ConicTo) isCommand() {}
func (CubicTo) isCommand() {}
func (Close) isCommand()   {}

func (cmd MoveTo) Transform(aff Affine) Command {
	return MoveTo{cmd.Point.Transform(aff)}
}

func (cmd LineTo) Transform(aff Affine) Command {
	return LineTo{cmd.Point.Transform(aff)}
}

func (cmd QuadTo) Transform(aff Affine) Command {
	return QuadTo{cmd.Control.Transform(aff), cmd.Point.Transform(aff)}
}

func (cmd ConicTo) Transform(aff Affine) Command {
	return ConicTo{cmd.Control.Transform(aff), cmd.Point.Transform(aff), cmd.Weight}
}

func (cmd CubicTo) Transform(aff Affine) Command {
	return CubicTo{
		cmd.Control1.Transform(aff),
		cmd.Control2.Transform(aff),
		cmd.Point.Transform(aff),
	}
}

func (cmd Close) Transform(aff Affine) Command { return cmd }

func (cmd MoveTo) String() string { return fmt.Sprintf("MoveTo(%s)", cmd.Point) }
func (cmd LineTo) String() string { return fmt.Sprintf("LineTo(%s)", cmd.Point) }
func (cmd QuadTo) String() string {
	return fmt.Sprintf("QuadTo(%s, %s)", cmd.Control, cmd.Point)
}
func (cmd ConicTo) String() string {
	return fmt.Sprintf("ConicTo(%s, %s, %g)", cmd.Control, cmd.Point, cmd.Weight)
}
func (cmd CubicTo) String() string {
	return fmt.Sprintf("CubicTo(%s, %s, %s)", cmd.Control1, cmd.Control2, cmd.Point)
}
func (Close) String() string { return "Close" }

// EndPoint returns the end point of the command, or false if none exists. It exists
// for all kinds except for [CloseKind].
func EndPoint(cmd Command) (Point, bool) {
	switch cmd := cmd.(type) {
	case MoveTo:
		return cmd.Point, true
	case LineTo:
		return cmd.Point, true
	case QuadTo:
		return cmd.Point, true
	case ConicTo:
		return cmd.Point, true
	case CubicTo:
		return cmd.Point, true
	default:
		return Point{}, false
	}
}

// points returns the points stored in cmd, in field order.
func points(cmd Command) ([3]Point, int) {
	switch cmd := cmd.(type) {
	case MoveTo:
		return [3]Point{cmd.Point}, 1
	case LineTo:
		return [3]Point{cmd.Point}, 1
	case QuadTo:
		return [3]Point{cmd.Control, cmd.Point}, 2
	case ConicTo:
		return [3]Point{cmd.Control, cmd.Point}, 2
	case CubicTo:
		return [3]Point{cmd.Control1, cmd.Control2, cmd.Point}, 3
	default:
		return [3]Point{}, 0
	}
}

// withPoints returns a copy of cmd whose points, in field order, are taken from
// the front of pts, and the number of points it consumed. Non-point fields,
// such as a conic's weight, are preserved.
func withPoints(cmd Command, pts []Point) (Command, int) {
	switch cmd := cmd.(type) {
	case MoveTo:
		return MoveTo{pts[0]}, 1
	case LineTo:
		return LineTo{pts[0]}, 1
	case QuadTo:
		return QuadTo{pts[0], pts[1]}, 2
	case ConicTo:
		return ConicTo{pts[0], pts[1], cmd.Weight}, 2
	case CubicTo:
		return CubicTo{pts[0], pts[1], pts[2]}, 3
	case Close:
		return cmd, 0
	default:
		panic(fmt.Sprintf("contour: invalid command %T", cmd))
	}
}
