package queries

import (
	"context"

	"agrispray/internal/domain/geo"
	"agrispray/internal/domain/provider"
	"agrispray/internal/pkg/errs"

	"github.com/google/uuid"
)

// LastLocationSource reads a caller's most recently reported coordinate.
type LastLocationSource interface {
	LastKnown(owner uuid.UUID) (geo.Coordinate, bool)
}

type NearbyParams struct {
	// Origin overrides the caller's tracked location when set.
	Origin *geo.Coordinate
	// Band overrides the configured default radius band when set.
	Band *provider.RadiusBand
}

type ProviderQueries interface {
	Nearby(ctx context.Context, actorID uuid.UUID, params NearbyParams) ([]*ProviderView, error)
}

type providerQueriesImpl struct {
	catalog     []*provider.Provider
	defaultBand provider.RadiusBand
	locations   LastLocationSource
}

func NewProviderQueries(catalog []*provider.Provider, defaultBand provider.RadiusBand, locations LastLocationSource) ProviderQueries {
	return &providerQueriesImpl{
		catalog:     catalog,
		defaultBand: defaultBand,
		locations:   locations,
	}
}

// Nearby matches the catalog against the caller's position. Without an
// explicit origin it falls back to the last reported location; with neither
// it fails rather than guessing a position.
func (q *providerQueriesImpl) Nearby(_ context.Context, actorID uuid.UUID, params NearbyParams) ([]*ProviderView, error) {
	origin := params.Origin
	if origin == nil {
		last, ok := q.locations.LastKnown(actorID)
		if !ok {
			return nil, errs.ErrNoKnownLocation
		}
		origin = &last
	}

	band := q.defaultBand
	if params.Band != nil {
		band = *params.Band
	}

	matches := provider.Nearby(*origin, q.catalog, band)
	views := make([]*ProviderView, 0, len(matches))
	for _, m := range matches {
		views = append(views, NewProviderView(m))
	}
	return views, nil
}
