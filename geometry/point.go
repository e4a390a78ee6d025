package geometry

import "fmt"

// Point is a position in the 2D coordinate system.
// It is a plain value: copying a Point copies its coordinates, and no
// method ever mutates the receiver.
type Point struct {
	// X is the horizontal coordinate.
	X float64
	// Y is the vertical coordinate.
	Y float64
}

// NewPoint returns the point (x, y). It never fails; any pair of
// float64 coordinates (including NaN or ±Inf) is a valid Point.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Origin returns the point (0, 0).
func Origin() Point {
	return Point{}
}

// String renders the point as "(x, y)" using %g formatting.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
