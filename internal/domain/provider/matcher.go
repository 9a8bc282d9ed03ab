package provider

import (
	"errors"
	"sort"

	"agrispray/internal/domain/geo"
)

var ErrInvalidRadiusBand = errors.New("radius band bounds must satisfy 0 <= min <= max")

// RadiusBand is the inclusive [MinKm, MaxKm] distance window used for
// provider matching.
type RadiusBand struct {
	MinKm float64
	MaxKm float64
}

func NewRadiusBand(minKm, maxKm float64) (RadiusBand, error) {
	if minKm < 0 || maxKm < minKm {
		return RadiusBand{}, ErrInvalidRadiusBand
	}
	return RadiusBand{MinKm: minKm, MaxKm: maxKm}, nil
}

func (b RadiusBand) Contains(distanceKm float64) bool {
	return distanceKm >= b.MinKm && distanceKm <= b.MaxKm
}

// Match pairs a provider with its distance from the matching origin.
type Match struct {
	Provider   *Provider
	DistanceKm float64
}

// Nearby returns the providers whose distance from origin falls inside the
// band, ordered by ascending distance. Ties are broken by provider id
// ascending so output is deterministic. An empty or fully filtered input
// yields an empty slice, never an error.
func Nearby(origin geo.Coordinate, providers []*Provider, band RadiusBand) []Match {
	matches := make([]Match, 0, len(providers))
	for _, p := range providers {
		d := geo.DistanceKm(origin, p.coordinate)
		if band.Contains(d) {
			matches = append(matches, Match{Provider: p, DistanceKm: d})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].DistanceKm != matches[j].DistanceKm {
			return matches[i].DistanceKm < matches[j].DistanceKm
		}
		return matches[i].Provider.id < matches[j].Provider.id
	})

	return matches
}
