package distance

import "math"

// ChordDistance returns the straight line distance through a sphere between
// two points at or beneath its surface. surfDist is the great circle distance
// between the epicentres of the two points and depthA, depthB how far each
// point lies beneath the surface, all in the same unit as radius.
//
// Depths are not checked against the radius. A depth greater than the radius
// gives a negative distance from the centre which is used as is.
func ChordDistance(radius, surfDist, depthA, depthB float64) float64 {
	// Arc length over radius, the circumference cancels out of
	// (surfDist / 2πr) * 2π
	theta := surfDist / radius
	return lawOfCosines(radius-depthA, radius-depthB, theta)
}

// lawOfCosines returns the third side of a triangle with sides a and b
// enclosing angle theta.
func lawOfCosines(a, b, theta float64) float64 {
	return math.Sqrt(a*a + b*b - 2*a*b*math.Cos(theta))
}
