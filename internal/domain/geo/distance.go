package geo

import "math"

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// DistanceKm returns the haversine great-circle distance between a and b in
// kilometers. It is symmetric and total for any valid coordinate pair,
// including antipodal points. Range validation happens in NewCoordinate, not
// here.
func DistanceKm(a, b Coordinate) float64 {
	dLat := radians(b.latitude - a.latitude)
	dLon := radians(b.longitude - a.longitude)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	h := sinLat*sinLat + math.Cos(radians(a.latitude))*math.Cos(radians(b.latitude))*sinLon*sinLon

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
