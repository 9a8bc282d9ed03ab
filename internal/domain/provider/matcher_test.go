//go:build unit

package provider_test

import (
	"testing"

	"agrispray/internal/domain/geo"
	"agrispray/internal/domain/provider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coord(t *testing.T, lat, lon float64) geo.Coordinate {
	t.Helper()
	c, err := geo.NewCoordinate(lat, lon)
	require.NoError(t, err)
	return c
}

func mustProvider(t *testing.T, id, name string, lat, lon float64) *provider.Provider {
	t.Helper()
	p, err := provider.NewProvider(id, name, "Nashik", "MH", coord(t, lat, lon))
	require.NoError(t, err)
	return p
}

func TestNewRadiusBand(t *testing.T) {
	cases := []struct {
		name  string
		min   float64
		max   float64
		errIs error
	}{
		{name: "default band", min: 0, max: 100},
		{name: "degenerate band", min: 50, max: 50},
		{name: "negative min", min: -1, max: 100, errIs: provider.ErrInvalidRadiusBand},
		{name: "max below min", min: 90, max: 80, errIs: provider.ErrInvalidRadiusBand},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			band, err := provider.NewRadiusBand(c.min, c.max)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.min, band.MinKm)
			assert.Equal(t, c.max, band.MaxKm)
		})
	}
}

func TestNearby(t *testing.T) {
	origin := coord(t, 19.9975, 73.7898) // Nashik

	near := mustProvider(t, "prov-igatpuri", "SkyField Agro", 19.6950, 73.5626)   // ~41 km
	mid := mustProvider(t, "prov-shirdi", "GreenWing Drones", 19.7645, 74.4769)   // ~76 km
	far := mustProvider(t, "prov-pune", "AgroCopter Services", 18.5204, 73.8567)  // ~164 km
	same := mustProvider(t, "prov-nashik", "CropDust Aviation", 19.9975, 73.7898) // 0 km

	all := []*provider.Provider{far, mid, near, same}

	band := func(min, max float64) provider.RadiusBand {
		b, err := provider.NewRadiusBand(min, max)
		require.NoError(t, err)
		return b
	}

	t.Run("filters by band and sorts ascending", func(t *testing.T) {
		matches := provider.Nearby(origin, all, band(0, 100))
		require.Len(t, matches, 3)
		assert.Equal(t, "prov-nashik", matches[0].Provider.ID())
		assert.Equal(t, "prov-igatpuri", matches[1].Provider.ID())
		assert.Equal(t, "prov-shirdi", matches[2].Provider.ID())
		for i := 1; i < len(matches); i++ {
			assert.LessOrEqual(t, matches[i-1].DistanceKm, matches[i].DistanceKm)
		}
	})

	t.Run("inclusion matches distance predicate", func(t *testing.T) {
		b := band(0, 100)
		matches := provider.Nearby(origin, all, b)
		matched := make(map[string]bool, len(matches))
		for _, m := range matches {
			matched[m.Provider.ID()] = true
		}
		for _, p := range all {
			d := geo.DistanceKm(origin, p.Coordinate())
			assert.Equal(t, b.Contains(d), matched[p.ID()], "provider %s at %.1f km", p.ID(), d)
		}
	})

	t.Run("lower bound excludes close providers", func(t *testing.T) {
		matches := provider.Nearby(origin, all, band(50, 100))
		require.Len(t, matches, 1)
		assert.Equal(t, "prov-shirdi", matches[0].Provider.ID())
	})

	t.Run("ties broken by id ascending", func(t *testing.T) {
		twinA := mustProvider(t, "prov-a", "Twin A", 19.6950, 73.5626)
		twinB := mustProvider(t, "prov-b", "Twin B", 19.6950, 73.5626)
		matches := provider.Nearby(origin, []*provider.Provider{twinB, twinA}, band(0, 100))
		require.Len(t, matches, 2)
		assert.Equal(t, "prov-a", matches[0].Provider.ID())
		assert.Equal(t, "prov-b", matches[1].Provider.ID())
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		matches := provider.Nearby(origin, nil, band(0, 100))
		assert.Empty(t, matches)
	})

	t.Run("no qualifying providers yields empty output", func(t *testing.T) {
		matches := provider.Nearby(origin, []*provider.Provider{far}, band(0, 100))
		assert.Empty(t, matches)
	})
}
