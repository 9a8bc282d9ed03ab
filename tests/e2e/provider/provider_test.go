//go:build e2e

package provider_test

import (
	"net/http"
	"sort"
	"testing"

	"agrispray/internal/handler/dto/response"
	"agrispray/tests/common/authtest"
	"agrispray/tests/common/httptest"
	"agrispray/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const nearbyURL = "/api/providers/nearby"

type ProviderSuite struct {
	e2e.SharedSuite
}

func TestProviderSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ProviderSuite))
}

func (s *ProviderSuite) token(t *testing.T) string {
	t.Helper()
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, uuid.New(), "+919876543210")
}

// =============================================================================
// TestNearbyProviders
// =============================================================================

func (s *ProviderSuite) TestNearbyProviders() {
	s.Run("explicit origin near Nashik matches catalog providers by distance", func() {
		t := s.T()
		token := s.token(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			nearbyURL+"?lat=20.0110&lon=73.7903&min_km=0&max_km=120", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var body response.NearbyProvidersResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		require.NotEmpty(t, body.Providers)

		require.Equal(t, "prov-nashik-01", body.Providers[0].ID)
		require.InDelta(t, 0, body.Providers[0].DistanceKm, 0.1)

		sorted := sort.SliceIsSorted(body.Providers, func(i, j int) bool {
			return body.Providers[i].DistanceKm < body.Providers[j].DistanceKm
		})
		require.True(t, sorted, "providers must be ordered by ascending distance")

		for _, p := range body.Providers {
			require.LessOrEqual(t, p.DistanceKm, 120.0)
		}
	})

	s.Run("a tight band excludes every provider", func() {
		t := s.T()
		token := s.token(t)

		// Offshore in the Arabian Sea; nothing within 5 km.
		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			nearbyURL+"?lat=18.0&lon=70.0&min_km=0&max_km=5", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var body response.NearbyProvidersResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		require.Empty(t, body.Providers)
	})

	s.Run("falls back to the last reported location", func() {
		t := s.T()
		token := s.token(t)

		// No coordinates anywhere yet.
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, nearbyURL, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "No known location")

		rw := httptest.PerformRequest(t, s.Router, http.MethodPut, "/api/location",
			map[string]float64{"latitude": 20.0110, "longitude": 73.7903}, token)
		require.Equal(t, http.StatusNoContent, rw.Code, rw.Body.String())

		nw := httptest.PerformRequest(t, s.Router, http.MethodGet, nearbyURL, nil, token)
		require.Equal(t, http.StatusOK, nw.Code, nw.Body.String())

		var body response.NearbyProvidersResponse
		require.NoError(t, httptest.DecodeResponseBody(t, nw.Body, &body))
		require.NotEmpty(t, body.Providers)
		require.Equal(t, "prov-nashik-01", body.Providers[0].ID)
	})

	s.Run("out of range coordinate report is rejected", func() {
		t := s.T()
		token := s.token(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, "/api/location",
			map[string]float64{"latitude": 91, "longitude": 0}, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})
}

// =============================================================================
// TestSavedAddresses
// =============================================================================

func (s *ProviderSuite) TestSavedAddresses() {
	s.Run("saved addresses round trip per user", func() {
		t := s.T()
		alice := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, uuid.New(), "+919876543210")
		bob := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, uuid.New(), "+918765432109")

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/addresses",
			map[string]any{
				"name":      "Home farm",
				"address":   "Gat No 42, Ozar, Nashik",
				"latitude":  20.0948,
				"longitude": 73.9290,
			}, alice)
		require.Equal(t, http.StatusCreated, cw.Code, cw.Body.String())

		var created response.AddressResponse
		require.NoError(t, httptest.DecodeResponseBody(t, cw.Body, &created))
		require.NotEqual(t, uuid.Nil, created.ID)
		require.Equal(t, "Home farm", created.Name)

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/addresses", nil, alice)
		require.Equal(t, http.StatusOK, lw.Code)

		var body struct {
			Addresses []response.AddressResponse `json:"addresses"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &body))
		require.Len(t, body.Addresses, 1)

		bw := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/addresses", nil, bob)
		require.Equal(t, http.StatusOK, bw.Code)

		var bobBody struct {
			Addresses []response.AddressResponse `json:"addresses"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, bw.Body, &bobBody))
		require.Empty(t, bobBody.Addresses)
	})
}
