package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompose_ReferenceScenario(t *testing.T) {
	// minRate=50, complexity 2.17 (rounded), 100h, R$500 variable, 10% off.
	b := Compose(50, 100, 2.17, 500, 10)

	require.InDelta(t, 108.5, b.AdjustedHourlyRate, 1e-9)
	require.InDelta(t, 10850, b.ProjectPrice, 1e-9)
	require.InDelta(t, 1085, b.DiscountAmount, 1e-9)
	require.InDelta(t, 9765, b.ProjectPriceWithDiscount, 1e-9)
	require.InDelta(t, 10265, b.FinalSalePrice, 1e-9)
}

func TestCompose_Deterministic(t *testing.T) {
	first := Compose(73.21, 87.5, 3.42, 1234.56, 7.5)
	second := Compose(73.21, 87.5, 3.42, 1234.56, 7.5)
	require.Equal(t, first, second)
}

func TestCompose_SentinelComplexityPropagates(t *testing.T) {
	b := Compose(50, 100, 0, 500, 10)

	require.Zero(t, b.AdjustedHourlyRate)
	require.Zero(t, b.ProjectPrice)
	require.Zero(t, b.DiscountAmount)
	require.Zero(t, b.ProjectPriceWithDiscount)
	// Variable expenses still flow through; the caller gates on the sentinel.
	require.InDelta(t, 500, b.FinalSalePrice, 1e-9)
}

func TestCompose_FinalNeverBelowDiscounted(t *testing.T) {
	cases := []struct{ rate, hours, complexity, expenses, discount float64 }{
		{50, 100, 2.17, 0, 0},
		{50, 100, 2.17, 500, 10},
		{120, 10, 1, 0.01, 100},
		{80, 0, 3, 250, 50},
	}
	for _, tc := range cases {
		b := Compose(tc.rate, tc.hours, tc.complexity, tc.expenses, tc.discount)
		require.GreaterOrEqual(t, b.FinalSalePrice, b.ProjectPriceWithDiscount)
	}
}

func TestCompose_DiscountMonotonicity(t *testing.T) {
	prev := Compose(50, 100, 2.17, 0, 0).ProjectPriceWithDiscount
	for discount := 5.0; discount <= 100; discount += 5 {
		cur := Compose(50, 100, 2.17, 0, discount).ProjectPriceWithDiscount
		require.Less(t, cur, prev, "discount %v", discount)
		prev = cur
	}
}

func TestProfit(t *testing.T) {
	profit, ok := Profit(108.5, 50, 100)
	require.True(t, ok)
	require.InDelta(t, 5850, profit, 1e-9)

	// Undefined unless both rates and the hours are positive.
	for _, tc := range []struct{ adjusted, min, hours float64 }{
		{0, 50, 100},
		{108.5, 0, 100},
		{108.5, 50, 0},
		{-1, 50, 100},
	} {
		_, ok := Profit(tc.adjusted, tc.min, tc.hours)
		require.False(t, ok, "%+v", tc)
	}
}
