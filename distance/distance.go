package distance

import (
	"github.com/semafind/geodist/models"
)

type DistFunc func(a, b models.Location) float64

var earth = Sphere{RadiusKm: EarthRadiusKm}

// GetDistanceFn returns the distance function by name, measured on Earth in
// kilometres.
func GetDistanceFn(name string) (DistFunc, error) {
	return earth.DistanceFn(name)
}
