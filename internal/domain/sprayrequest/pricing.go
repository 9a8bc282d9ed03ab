package sprayrequest

// PriceCalculator derives the pre-discount price of a request.
type PriceCalculator interface {
	BasePrice(plan TankPlan) float64
}

type DefaultPriceCalculator struct {
	RatePerTank float64
}

func NewDefaultPriceCalculator(ratePerTank float64) *DefaultPriceCalculator {
	return &DefaultPriceCalculator{RatePerTank: ratePerTank}
}

func (pc *DefaultPriceCalculator) BasePrice(plan TankPlan) float64 {
	return pc.RatePerTank * float64(plan.TanksToSpray())
}
