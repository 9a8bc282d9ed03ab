package geo

import "errors"

var (
	ErrLatitudeOutOfRange  = errors.New("latitude must be between -90 and 90")
	ErrLongitudeOutOfRange = errors.New("longitude must be between -180 and 180")
)

// Coordinate is an immutable latitude/longitude pair in decimal degrees.
type Coordinate struct {
	latitude  float64
	longitude float64
}

func NewCoordinate(latitude, longitude float64) (Coordinate, error) {
	if latitude < -90 || latitude > 90 {
		return Coordinate{}, ErrLatitudeOutOfRange
	}
	if longitude < -180 || longitude > 180 {
		return Coordinate{}, ErrLongitudeOutOfRange
	}
	return Coordinate{latitude: latitude, longitude: longitude}, nil
}

func (c Coordinate) Latitude() float64 {
	return c.latitude
}

func (c Coordinate) Longitude() float64 {
	return c.longitude
}

func (c Coordinate) Equal(other Coordinate) bool {
	return c.latitude == other.latitude && c.longitude == other.longitude
}
