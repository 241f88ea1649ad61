package contour

import "fmt"

// Direction is the winding direction of a contour, as reported by
// [Contour.Direction].
//
// Clockwise and counter-clockwise refer to a y-down coordinate system, as is
// common for graphics. In a y-up system the meanings are swapped.
type Direction int

const (
	// UndefinedDirection is reported for contours with fewer than three
	// commands and for contours whose end points enclose zero signed area,
	// such as collinear or self-cancelling contours.
	UndefinedDirection Direction = iota
	Clockwise
	CounterClockwise
)

func (d Direction) String() string {
	switch d {
	case UndefinedDirection:
		return "undefined"
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter clockwise"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Opposite returns the reverse direction. The opposite of UndefinedDirection
// is UndefinedDirection.
func (d Direction) Opposite() Direction {
	switch d {
	case Clockwise:
		return CounterClockwise
	case CounterClockwise:
		return Clockwise
	default:
		return d
	}
}

// directionOf classifies the cross-product sum of a polygon. Zero sums have
// no direction.
func directionOf(sum float64) Direction {
	switch {
	case sum > 0:
		return Clockwise
	case sum < 0:
		return CounterClockwise
	default:
		return UndefinedDirection
	}
}
