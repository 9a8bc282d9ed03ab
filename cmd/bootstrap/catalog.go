package bootstrap

import (
	"agrispray/internal/domain/coupon"
	"agrispray/internal/domain/provider"
	"agrispray/internal/domain/sprayrequest"
	"agrispray/internal/infra/catalog"
	"agrispray/internal/pkg/config"

	"go.uber.org/fx"
)

// CatalogModule wires the static domain data: the provider catalog, the
// matching radius band, the coupon table and the pricing rate.
var CatalogModule = fx.Module("catalog",
	fx.Provide(
		NewProviderCatalog,
		NewRadiusBand,
		NewCouponTable,
		NewPriceCalculator,
	),
)

func NewProviderCatalog(cfg config.Config) ([]*provider.Provider, error) {
	return catalog.Load(cfg.Catalog.Path)
}

func NewRadiusBand(cfg config.Config) (provider.RadiusBand, error) {
	return provider.NewRadiusBand(cfg.Match.MinRadiusKm, cfg.Match.MaxRadiusKm)
}

func NewCouponTable(cfg config.Config) (coupon.Table, error) {
	return coupon.NewTable(cfg.Coupon.Table)
}

func NewPriceCalculator(cfg config.Config) sprayrequest.PriceCalculator {
	return sprayrequest.NewDefaultPriceCalculator(cfg.Pricing.RatePerTank)
}
