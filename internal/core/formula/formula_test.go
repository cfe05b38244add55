package formula

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCTRBounds(t *testing.T) {
	cases := []struct{ clicks, impressions int64 }{
		{0, 0}, {0, 1}, {1, 1}, {5, 10}, {100, 100}, {3, 1000},
	}
	for _, c := range cases {
		ctr, err := CTR(c.clicks, c.impressions)
		require.NoError(t, err)
		require.GreaterOrEqual(t, ctr, 0.0)
		require.LessOrEqual(t, ctr, 1.0)
	}
}

func TestCTRZeroImpressions(t *testing.T) {
	ctr, err := CTR(0, 0)
	require.NoError(t, err)
	require.Zero(t, ctr)
}

func TestNegativeInputsRejected(t *testing.T) {
	_, err := CTR(-1, 10)
	require.ErrorIs(t, err, ErrInvalidMetricInput)

	_, err = Spend(10, -1, 100)
	require.ErrorIs(t, err, ErrInvalidMetricInput)

	_, err = Spend(10, 1, -100)
	require.ErrorIs(t, err, ErrInvalidMetricInput)

	_, err = CPC(-0.5, 10)
	require.ErrorIs(t, err, ErrInvalidMetricInput)

	_, err = CPM(1, -1)
	require.ErrorIs(t, err, ErrInvalidMetricInput)

	_, err = AdvertiseScore(0.5, -1, 10)
	require.ErrorIs(t, err, ErrInvalidMetricInput)

	_, err = DiscountCost(-100, 0.5)
	require.ErrorIs(t, err, ErrInvalidMetricInput)

	_, err = DiscountCost(100, math.NaN())
	require.ErrorIs(t, err, ErrInvalidMetricInput)

	_, err = TrendingScore(-1, 0, 0, 0, 0)
	require.ErrorIs(t, err, ErrInvalidMetricInput)
}

func TestSpendBoundedByBudget(t *testing.T) {
	cost, err := Spend(1_000_000, 1_000_000, 250)
	require.NoError(t, err)
	require.Equal(t, 250.0, cost)

	cost, err = Spend(0, 0, 250)
	require.NoError(t, err)
	require.Zero(t, cost)
}

func TestCostFiguresConsistent(t *testing.T) {
	fig, err := CostFigures(1000, 50, 200)
	require.NoError(t, err)
	require.InEpsilon(t, 0.05, fig.CTR, 1e-9)
	require.InEpsilon(t, fig.Cost/50, fig.CPC, 1e-9)
	require.InEpsilon(t, fig.Cost/1000, fig.CPV, 1e-9)
	require.InEpsilon(t, fig.CPV*1000, fig.CPM, 1e-9)
	require.LessOrEqual(t, fig.Cost, 200.0)
}

func TestAdvertiseScoreBoundsAndMonotonicity(t *testing.T) {
	prev := -1.0
	// increasing CTR raises the score
	for _, ctr := range []float64{0, 0.25, 0.5, 0.75, 1} {
		s, err := AdvertiseScore(ctr, 10, 100)
		require.NoError(t, err)
		require.GreaterOrEqual(t, s, 0.0)
		require.LessOrEqual(t, s, 1.0)
		require.Greater(t, s, prev)
		prev = s
	}
	// increasing cost lowers the score
	prev = 2.0
	for _, cost := range []float64{0, 10, 50, 100} {
		s, err := AdvertiseScore(0.5, cost, 100)
		require.NoError(t, err)
		require.Less(t, s, prev)
		prev = s
	}
}

func TestAdvertiseScoreStable(t *testing.T) {
	a, err := AdvertiseScore(0.3, 42, 500)
	require.NoError(t, err)
	b, err := AdvertiseScore(0.3, 42, 500)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestDiscountCostMonotonicAndBounded(t *testing.T) {
	const budget = 100.0
	prev := budget + 1
	for _, score := range []float64{0, 0.2, 0.5, 0.8, 1} {
		cost, err := DiscountCost(budget, score)
		require.NoError(t, err)
		require.GreaterOrEqual(t, cost, 0.0)
		require.LessOrEqual(t, cost, budget)
		require.Less(t, cost, prev)
		prev = cost
	}

	// non-decreasing in budget for fixed score
	low, err := DiscountCost(100, 0.5)
	require.NoError(t, err)
	high, err := DiscountCost(200, 0.5)
	require.NoError(t, err)
	require.GreaterOrEqual(t, high, low)
}

func TestTrendingScoreZeroTotals(t *testing.T) {
	s, err := TrendingScore(0, 0, 0, 0, 0)
	require.NoError(t, err)
	require.Zero(t, s)
	require.False(t, math.IsNaN(s))
}

func TestTrendingScoreFinite(t *testing.T) {
	s, err := TrendingScore(500, 10000, 42, 12345.6, 542)
	require.NoError(t, err)
	require.False(t, math.IsNaN(s))
	require.False(t, math.IsInf(s, 0))
	require.Greater(t, s, 0.0)
}
