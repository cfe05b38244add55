// Package formula holds the pure metric math of the ads engine: per-bucket
// cost and efficiency figures, the bounded advertise score used for cost
// discounting, and the trending score used for cross-advertisement ranking.
// Every function is deterministic and side-effect free. Negative or NaN
// inputs are rejected outright; nothing is clamped.
package formula

import (
	"errors"
	"math"
)

// ErrInvalidMetricInput is returned when a formula receives a negative or
// NaN input. No partial result is computed.
var ErrInvalidMetricInput = errors.New("formula: negative or NaN input")

const (
	// Spend model: each impression consumes budget/viewDivisor, each click
	// budget/clickDivisor, capped at the budget.
	viewDivisor  = 10000.0
	clickDivisor = 1000.0

	// Advertise score weights. They sum to 1 so the score stays in [0,1].
	ctrWeight  = 0.6
	costWeight = 0.4

	// maxDiscount bounds how much of the budget a perfect score can shave
	// off. Kept below 1 so the discounted cost never leaves [0, budget].
	maxDiscount = 0.3

	// Trending score weights over the latest bucket's counters.
	clickWeight      = 2.0
	conversionWeight = 3.0
	reachWeight      = 0.5

	// TrendingDivisor averages the raw trending score into the published
	// ranking score.
	TrendingDivisor = 5.0
)

// Figures bundles the derived values for one daily bucket. Cost here is the
// raw pre-discount spend; the discount is applied separately once the
// advertise score is known.
type Figures struct {
	Cost float64
	CTR  float64
	CPC  float64
	CPV  float64
	CPM  float64
}

func validate(vals ...float64) error {
	for _, v := range vals {
		if v < 0 || math.IsNaN(v) {
			return ErrInvalidMetricInput
		}
	}
	return nil
}

// CTR returns clicks/impressions, or 0 when there are no impressions.
func CTR(clicks, impressions int64) (float64, error) {
	if clicks < 0 || impressions < 0 {
		return 0, ErrInvalidMetricInput
	}
	if impressions == 0 {
		return 0, nil
	}
	return float64(clicks) / float64(impressions), nil
}

// Spend models the raw cost accumulated by a bucket: monotonic in both
// counters and bounded by the budget.
func Spend(impressions, clicks int64, budget float64) (float64, error) {
	if impressions < 0 || clicks < 0 {
		return 0, ErrInvalidMetricInput
	}
	if err := validate(budget); err != nil {
		return 0, err
	}
	cost := float64(impressions)*budget/viewDivisor + float64(clicks)*budget/clickDivisor
	return math.Min(cost, budget), nil
}

// CPC returns cost per click, or 0 when there are no clicks.
func CPC(cost float64, clicks int64) (float64, error) {
	if clicks < 0 {
		return 0, ErrInvalidMetricInput
	}
	if err := validate(cost); err != nil {
		return 0, err
	}
	if clicks == 0 {
		return 0, nil
	}
	return cost / float64(clicks), nil
}

// CPV returns cost per view (impression), or 0 when there are no impressions.
func CPV(cost float64, impressions int64) (float64, error) {
	if impressions < 0 {
		return 0, ErrInvalidMetricInput
	}
	if err := validate(cost); err != nil {
		return 0, err
	}
	if impressions == 0 {
		return 0, nil
	}
	return cost / float64(impressions), nil
}

// CPM returns cost per thousand impressions.
func CPM(cost float64, impressions int64) (float64, error) {
	cpv, err := CPV(cost, impressions)
	if err != nil {
		return 0, err
	}
	return cpv * 1000, nil
}

// CostFigures derives every per-bucket figure from the raw counters and the
// advertisement budget.
func CostFigures(impressions, clicks int64, budget float64) (Figures, error) {
	cost, err := Spend(impressions, clicks, budget)
	if err != nil {
		return Figures{}, err
	}
	ctr, err := CTR(clicks, impressions)
	if err != nil {
		return Figures{}, err
	}
	cpc, err := CPC(cost, clicks)
	if err != nil {
		return Figures{}, err
	}
	cpv, err := CPV(cost, impressions)
	if err != nil {
		return Figures{}, err
	}
	return Figures{Cost: cost, CTR: ctr, CPC: cpc, CPV: cpv, CPM: cpv * 1000}, nil
}

// AdvertiseScore combines engagement and cost efficiency into a score in
// [0,1]: it grows with CTR and shrinks as the cost per impression grows.
// Same inputs always produce the same score.
func AdvertiseScore(ctr, cost float64, impressions int64) (float64, error) {
	if impressions < 0 {
		return 0, ErrInvalidMetricInput
	}
	if err := validate(ctr, cost); err != nil {
		return 0, err
	}
	cpv := 0.0
	if impressions > 0 {
		cpv = cost / float64(impressions)
	}
	return ctrWeight*ctr + costWeight/(1+cpv), nil
}

// DiscountCost returns the budget reduced in proportion to the advertise
// score: better-performing advertisements spend less. The result is
// non-increasing in score, non-decreasing in budget, and always within
// [0, budget].
func DiscountCost(budget, score float64) (float64, error) {
	if err := validate(budget, score); err != nil {
		return 0, err
	}
	return budget * (1 - maxDiscount*score), nil
}

// TrendingScore collapses the latest bucket's counters and the lifetime
// totals into a single ranking scalar. All-zero inputs yield 0, never NaN.
func TrendingScore(clicks, impressions, conversions int64, totalCost, totalInteractions float64) (float64, error) {
	if clicks < 0 || impressions < 0 || conversions < 0 {
		return 0, ErrInvalidMetricInput
	}
	if err := validate(totalCost, totalInteractions); err != nil {
		return 0, err
	}
	engagement := clickWeight*float64(clicks) +
		conversionWeight*float64(conversions) +
		reachWeight*float64(impressions)
	efficiency := totalInteractions / (1 + totalCost)
	return engagement + efficiency, nil
}
