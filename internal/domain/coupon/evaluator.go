package coupon

import (
	"errors"
	"strings"
)

// InvalidCodeReason is the user-facing message for an unknown coupon code.
const InvalidCodeReason = "Invalid coupon code"

var ErrInvalidFraction = errors.New("discount fraction must be between 0 and 1")

// Table maps coupon codes to discount fractions. Matching is exact and
// case-sensitive after a single surrounding-whitespace strip.
type Table map[string]float64

func NewTable(codes map[string]float64) (Table, error) {
	t := make(Table, len(codes))
	for code, fraction := range codes {
		if fraction < 0 || fraction > 1 {
			return nil, ErrInvalidFraction
		}
		t[strings.TrimSpace(code)] = fraction
	}
	return t, nil
}

func DefaultTable() Table {
	return Table{
		"DISCOUNT10": 0.10,
		"DISCOUNT20": 0.20,
	}
}

// Result is the outcome of evaluating a coupon against a base price. An
// unknown code is an expected user-input case, not an error: the price comes
// back unchanged with Reason set.
type Result struct {
	Price   float64
	Applied bool
	Reason  string
}

// Apply discounts basePrice by the fraction registered for code. The discount
// always derives from basePrice, never from an already-discounted price, so
// re-evaluating with a different code cannot compound.
func (t Table) Apply(basePrice float64, code string) Result {
	code = strings.TrimSpace(code)

	fraction, ok := t[code]
	if !ok {
		return Result{Price: basePrice, Applied: false, Reason: InvalidCodeReason}
	}

	return Result{Price: basePrice * (1 - fraction), Applied: true}
}
