package distance

import (
	"errors"
	"fmt"
	"math"

	"github.com/semafind/geodist/models"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrInvalidRadius is returned for a radius that is not positive and finite.
var ErrInvalidRadius = errors.New("invalid radius")

// Sphere carries the radius used for its distance calculations. A literal
// Sphere is not validated, use NewSphere to reject unusable radii.
type Sphere struct {
	RadiusKm float64
}

// NewSphere returns a sphere of the given radius, rejecting unusable radii.
func NewSphere(radiusKm float64) (Sphere, error) {
	if math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) || radiusKm <= 0 {
		return Sphere{}, fmt.Errorf("%w: %v", ErrInvalidRadius, radiusKm)
	}
	return Sphere{RadiusKm: radiusKm}, nil
}

// GreatCircleDistance returns the surface distance between two points given
// in degrees, in the unit of the radius.
func (s Sphere) GreatCircleDistance(long0, lat0, long1, lat1 float64) float64 {
	return s.RadiusKm * centralAngle(long0, lat0, long1, lat1)
}

// ChordDistance returns the straight line distance between two locations
// beneath the surface. The great circle distance between their epicentres
// sets the angle between them.
func (s Sphere) ChordDistance(a, b models.Location) float64 {
	surfDist := s.GreatCircleDistance(a.Longitude, a.Latitude, b.Longitude, b.Latitude)
	return ChordDistance(s.RadiusKm, surfDist, a.Depth, b.Depth)
}

// CartesianChord computes the same distance as ChordDistance by placing both
// locations in sphere centred cartesian coordinates.
func (s Sphere) CartesianChord(a, b models.Location) float64 {
	return r3.Norm(r3.Sub(s.toCartesian(a), s.toCartesian(b)))
}

func (s Sphere) toCartesian(l models.Location) r3.Vec {
	lat, long := DegToRad(l.Latitude), DegToRad(l.Longitude)
	unit := r3.Vec{
		X: math.Cos(lat) * math.Cos(long),
		Y: math.Cos(lat) * math.Sin(long),
		Z: math.Sin(lat),
	}
	return r3.Scale(s.RadiusKm-l.Depth, unit)
}

// DistanceFn returns the named distance function bound to this sphere.
func (s Sphere) DistanceFn(name string) (DistFunc, error) {
	switch name {
	case models.DistanceHaversine:
		return func(a, b models.Location) float64 {
			return s.GreatCircleDistance(a.Longitude, a.Latitude, b.Longitude, b.Latitude)
		}, nil
	case models.DistanceChord:
		return s.ChordDistance, nil
	default:
		return nil, fmt.Errorf("unknown location distance function: %s", name)
	}
}
