package geometry

import (
	"fmt"
	"math"
)

// Line is a straight segment between two points in the 2D coordinate
// system. Both endpoints are held by value; a Line never shares state
// with the Points it was built from.
//
// Slope and Theta treat P1 as the start point and P2 as the end point.
// A Line whose endpoints coincide is degenerate: its Slope is NaN and
// its Theta is 0.
type Line struct {
	// P1 is the start endpoint.
	P1 Point
	// P2 is the end endpoint.
	P2 Point
}

// NewLine returns the line with endpoints p1 and p2.
func NewLine(p1, p2 Point) Line {
	return Line{P1: p1, P2: p2}
}

// Length returns the Euclidean distance between the endpoints:
// sqrt((x2−x1)² + (y2−y1)²).
func (l Line) Length() float64 {
	dx := l.P2.X - l.P1.X
	dy := l.P2.Y - l.P1.Y

	return math.Sqrt(dx*dx + dy*dy)
}

// Slope returns (y2−y1)/(x2−x1).
//
// A vertical line divides by zero; per IEEE-754 the result is +Inf or
// −Inf depending on the sign of dy, and NaN when both deltas are zero.
// There is intentionally no guard — callers that care must check
// math.IsInf / math.IsNaN themselves.
func (l Line) Slope() float64 {
	dy := DeltaCoord(l.P2.Y, l.P1.Y)
	dx := DeltaCoord(l.P2.X, l.P1.X)

	return dy / dx
}

// Theta returns the angle of the line relative to the x-axis, in
// radians in the range (−π, π], computed as atan2(dy, dx). Unlike
// Slope, Theta is well-defined for vertical lines (±π/2).
func (l Line) Theta() float64 {
	dy := DeltaCoord(l.P2.Y, l.P1.Y)
	dx := DeltaCoord(l.P2.X, l.P1.X)

	return math.Atan2(dy, dx)
}

// String renders the line as "[(x1, y1) -> (x2, y2)]".
func (l Line) String() string {
	return fmt.Sprintf("[%s -> %s]", l.P1, l.P2)
}
