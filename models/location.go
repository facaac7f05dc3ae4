package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// A Location is a point at or beneath the surface of a sphere. The surface
// point directly above it is its epicentre.
type Location struct {
	// Degrees, east positive
	Longitude float64 `validate:"min=-180,max=180"`
	// Degrees, north positive
	Latitude float64 `validate:"min=-90,max=90"`
	// Distance beneath the surface, same unit as the sphere radius
	Depth float64 `validate:"min=0"`
}

// Epicentre returns the surface point directly above the location.
func (l Location) Epicentre() Location {
	return Location{Longitude: l.Longitude, Latitude: l.Latitude}
}

// Validate checks the coordinates are in range. NaN and infinite coordinates
// fail the range checks. The distance functions never call this, out of range
// values pass through them arithmetically.
func (l Location) Validate() error {
	if err := validate.Struct(l); err != nil {
		return fmt.Errorf("invalid location %+v: %w", l, err)
	}
	return nil
}
