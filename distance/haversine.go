package distance

import (
	"math"

	"github.com/rs/zerolog/log"
)

// EarthRadiusKm is the mean radius used for great circle distances on Earth.
const EarthRadiusKm = 6367

// GreatCircleDistance returns the surface distance in kilometres between two
// points on Earth given in degrees.
//
// https://en.wikipedia.org/wiki/Haversine_formula
func GreatCircleDistance(long0, lat0, long1, lat1 float64) float64 {
	return earth.GreatCircleDistance(long0, lat0, long1, lat1)
}

// centralAngle returns the angle in radians subtended at the centre of the
// sphere by the two points.
func centralAngle(long0, lat0, long1, lat1 float64) float64 {
	long0, lat0 = DegToRad(long0), DegToRad(lat0)
	long1, lat1 = DegToRad(long1), DegToRad(lat1)
	// ---------------------------
	dlong := long1 - long0
	dlat := lat1 - lat0
	sinLat := math.Sin(dlat / 2)
	sinLong := math.Sin(dlong / 2)
	a := sinLat*sinLat + math.Cos(lat0)*math.Cos(lat1)*sinLong*sinLong
	// Rounding can push a just outside [0, 1] for nearly antipodal points
	// which would make the asin below NaN.
	if a > 1 || a < 0 {
		log.Debug().Float64("a", a).Msg("Clamping haversine term")
		a = math.Max(0, math.Min(1, a))
	}
	return 2 * math.Asin(math.Sqrt(a))
}
