// Package catalog loads the static provider catalog the matcher runs
// against.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"agrispray/internal/domain/geo"
	"agrispray/internal/domain/provider"
	"agrispray/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

//go:embed providers.yaml
var defaultCatalog []byte

type providerEntry struct {
	ID        string  `yaml:"id"`
	Name      string  `yaml:"name"`
	City      string  `yaml:"city"`
	State     string  `yaml:"state"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

type catalogFile struct {
	Providers []providerEntry `yaml:"providers"`
}

// Load reads the provider catalog from path, or the embedded default when
// path is empty. A malformed entry fails the whole load: the catalog is
// deploy-time configuration, not user input.
func Load(path string) ([]*provider.Provider, error) {
	raw := defaultCatalog
	if path != "" {
		var err error
		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, errs.Wrap(err, "failed to read provider catalog")
		}
	}

	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, errs.Wrap(err, "failed to parse provider catalog")
	}

	providers := make([]*provider.Provider, 0, len(file.Providers))
	for i, entry := range file.Providers {
		coord, err := geo.NewCoordinate(entry.Latitude, entry.Longitude)
		if err != nil {
			return nil, errs.Wrap(err, fmt.Sprintf("catalog entry %d (%s)", i, entry.ID))
		}
		p, err := provider.NewProvider(entry.ID, entry.Name, entry.City, entry.State, coord)
		if err != nil {
			return nil, errs.Wrap(err, fmt.Sprintf("catalog entry %d (%s)", i, entry.ID))
		}
		providers = append(providers, p)
	}

	return providers, nil
}
