// Package geo computes great-circle distances between WGS84 coordinates.
package geo

import (
	"math"

	"github.com/heartmarshall/ecoponto-backend/internal/domain"
)

// EarthRadiusMeters is the mean Earth radius used by the haversine formula.
const EarthRadiusMeters = 6_371_000.0

// Distance returns the haversine distance between a and b in whole meters.
func Distance(a, b domain.Coordinates) int {
	return int(math.Round(DistanceExact(a, b)))
}

// DistanceExact returns the unrounded haversine distance in meters.
func DistanceExact(a, b domain.Coordinates) float64 {
	if a == b {
		return 0
	}

	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	// Rounding can push h slightly outside [0,1] near antipodes, which
	// would turn sqrt(1-h) into NaN.
	h = math.Min(1, math.Max(0, h))

	return 2 * EarthRadiusMeters * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Within reports whether b lies at most radiusMeters from a, and returns the
// distance. Non-finite input never matches.
func Within(a, b domain.Coordinates, radiusMeters int) (int, bool) {
	exact := DistanceExact(a, b)
	if math.IsNaN(exact) || math.IsInf(exact, 0) {
		return 0, false
	}
	d := int(math.Round(exact))
	return d, d <= radiusMeters
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
