// Package geometry provides plain 2D value types — Point, Line, Circle —
// and the coordinate helpers they are built from.
//
// What:
//
//   - Point is an (X, Y) pair of float64 coordinates with an Origin constructor.
//   - Line joins two Points and derives Length, Slope and Theta (angle).
//   - Circle is a radius plus centre Point, deriving Circumference and Area.
//   - DeltaCoord returns the signed difference between two scalar coordinates.
//
// Why:
//
//   - Plotting and layout math: distances, slopes, angles against the x-axis.
//   - Feeding higher-level routines (matrix transforms, path cost) with
//     cheap copyable values instead of shared references.
//
// Numeric policy:
//
//   - All derived quantities follow IEEE-754 exactly. A vertical Line divides
//     by zero in Slope and yields ±Inf (or NaN for a degenerate line whose
//     endpoints coincide); there is deliberately no special-case guard.
//   - Circle performs no radius validation; a negative radius produces a
//     negative Circumference and a positive Area, as the formulas dictate.
//
// Complexity:
//
//	Every operation in this package is O(1) time and O(1) space.
//
// Errors:
//
//	None. All inputs are total; out-of-domain results are IEEE values.
package geometry
