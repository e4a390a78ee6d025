package geometry

// DeltaCoord returns the signed difference c2 − c1 between two scalar
// coordinates, where c2 belongs to the final/end point and c1 to the
// start point. Line uses it for both slope and angle so that the sign
// convention lives in exactly one place.
func DeltaCoord(c2, c1 float64) float64 {
	return c2 - c1
}
