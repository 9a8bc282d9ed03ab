//go:build unit

package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"agrispray/internal/infra/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefault(t *testing.T) {
	providers, err := catalog.Load("")
	require.NoError(t, err)
	require.NotEmpty(t, providers)

	seen := make(map[string]bool)
	for _, p := range providers {
		assert.False(t, seen[p.ID()], "duplicate provider id %q", p.ID())
		seen[p.ID()] = true
		assert.NotEmpty(t, p.Name())
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := writeCatalog(t, `
providers:
  - id: prov-test-01
    name: Test Provider
    city: Nashik
    state: mh
    latitude: 20.0
    longitude: 73.8
`)
		providers, err := catalog.Load(path)
		require.NoError(t, err)
		require.Len(t, providers, 1)
		assert.Equal(t, "prov-test-01", providers[0].ID())
		assert.Equal(t, 20.0, providers[0].Coordinate().Latitude())
	})

	t.Run("out-of-range coordinate fails the load", func(t *testing.T) {
		path := writeCatalog(t, `
providers:
  - id: prov-bad
    name: Broken
    city: Nowhere
    state: xx
    latitude: 91.0
    longitude: 73.8
`)
		_, err := catalog.Load(path)
		require.Error(t, err)
	})

	t.Run("missing id fails the load", func(t *testing.T) {
		path := writeCatalog(t, `
providers:
  - name: Anonymous
    city: Nowhere
    state: xx
    latitude: 20.0
    longitude: 73.8
`)
		_, err := catalog.Load(path)
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := catalog.Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})
}

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "providers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
