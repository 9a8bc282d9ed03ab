package provider

import (
	"errors"
	"strings"

	"agrispray/internal/domain/geo"
)

var (
	ErrEmptyID   = errors.New("provider id cannot be empty")
	ErrEmptyName = errors.New("provider name cannot be empty")
)

// Provider is a spray-service operator at a fixed coordinate. Providers come
// from a static catalog and are read-only inside this module.
type Provider struct {
	id         string
	name       string
	city       string
	state      string
	coordinate geo.Coordinate
}

func NewProvider(id, name, city, state string, coordinate geo.Coordinate) (*Provider, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrEmptyID
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	return &Provider{
		id:         id,
		name:       name,
		city:       city,
		state:      state,
		coordinate: coordinate,
	}, nil
}

func (p *Provider) ID() string                 { return p.id }
func (p *Provider) Name() string               { return p.name }
func (p *Provider) City() string               { return p.city }
func (p *Provider) State() string              { return p.state }
func (p *Provider) Coordinate() geo.Coordinate { return p.coordinate }
