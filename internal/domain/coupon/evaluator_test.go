//go:build unit

package coupon_test

import (
	"testing"

	"agrispray/internal/domain/coupon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	t.Run("accepts valid fractions", func(t *testing.T) {
		table, err := coupon.NewTable(map[string]float64{"HALF": 0.5, "FREE": 1, "NOOP": 0})
		require.NoError(t, err)
		assert.Len(t, table, 3)
	})

	t.Run("rejects fraction above 1", func(t *testing.T) {
		_, err := coupon.NewTable(map[string]float64{"BROKEN": 1.5})
		require.ErrorIs(t, err, coupon.ErrInvalidFraction)
	})

	t.Run("rejects negative fraction", func(t *testing.T) {
		_, err := coupon.NewTable(map[string]float64{"BROKEN": -0.1})
		require.ErrorIs(t, err, coupon.ErrInvalidFraction)
	})
}

func TestApply(t *testing.T) {
	table := coupon.DefaultTable()

	cases := []struct {
		name        string
		basePrice   float64
		code        string
		wantPrice   float64
		wantApplied bool
	}{
		{name: "ten percent off", basePrice: 1000, code: "DISCOUNT10", wantPrice: 900, wantApplied: true},
		{name: "twenty percent off", basePrice: 1000, code: "DISCOUNT20", wantPrice: 800, wantApplied: true},
		{name: "unknown code leaves price unchanged", basePrice: 1000, code: "BOGUS", wantPrice: 1000},
		{name: "empty code is invalid", basePrice: 1000, code: "", wantPrice: 1000},
		{name: "match is case-sensitive", basePrice: 1000, code: "discount10", wantPrice: 1000},
		{name: "surrounding whitespace is stripped", basePrice: 1000, code: " DISCOUNT10 ", wantPrice: 900, wantApplied: true},
		{name: "zero base price", basePrice: 0, code: "DISCOUNT20", wantPrice: 0, wantApplied: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			result := table.Apply(c.basePrice, c.code)
			assert.InDelta(t, c.wantPrice, result.Price, 1e-9)
			assert.Equal(t, c.wantApplied, result.Applied)
			if c.wantApplied {
				assert.Empty(t, result.Reason)
			} else {
				assert.Equal(t, coupon.InvalidCodeReason, result.Reason)
			}
		})
	}

	t.Run("re-applying a different code derives from the base price", func(t *testing.T) {
		first := table.Apply(1500, "DISCOUNT10")
		require.True(t, first.Applied)
		assert.InDelta(t, 1350.0, first.Price, 1e-9)

		// The second evaluation must not see the discounted 1350.
		second := table.Apply(1500, "DISCOUNT20")
		require.True(t, second.Applied)
		assert.InDelta(t, 1200.0, second.Price, 1e-9)
	})
}
