package geometry

import (
	"fmt"
	"math"
)

// Circle is a circle in the 2D coordinate system, described by its
// radius and centre point.
//
// The radius is not validated: a negative radius is carried through the
// formulas as-is (negative Circumference, positive Area). Rejecting it
// is the caller's business.
type Circle struct {
	// Radius is the circle radius.
	Radius float64
	// Centre is the centre point.
	Centre Point
}

// NewCircle returns the circle with the given radius and centre.
func NewCircle(radius float64, centre Point) Circle {
	return Circle{Radius: radius, Centre: centre}
}

// Circumference returns 2·π·r.
func (c Circle) Circumference() float64 {
	return 2 * math.Pi * c.Radius
}

// Area returns π·r².
func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

// String renders the circle as "{r: radius, c: (x, y)}".
func (c Circle) String() string {
	return fmt.Sprintf("{r: %g, c: %s}", c.Radius, c.Centre)
}
