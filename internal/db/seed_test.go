package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pulse-ads/internal/core/domain"
	"pulse-ads/internal/core/formula"
)

// Demo buckets must satisfy the same counters-to-figures consistency that
// event processing produces.
func TestDemoBucketFiguresConsistent(t *testing.T) {
	day := domain.DayOf(time.Now())
	const budget = 300.0

	bucket, score, err := demoBucket(day, 400, 25, 3, budget)
	require.NoError(t, err)

	require.EqualValues(t, 400, bucket.Impressions)
	require.EqualValues(t, 25, bucket.Clicks)
	require.EqualValues(t, 3, bucket.Conversions)

	fig, err := formula.CostFigures(bucket.Impressions, bucket.Clicks, budget)
	require.NoError(t, err)
	require.Equal(t, fig.CTR, bucket.CTR)
	require.Equal(t, fig.CPC, bucket.CPC)
	require.Equal(t, fig.CPV, bucket.CPV)
	require.Equal(t, fig.CPM, bucket.CPM)

	require.GreaterOrEqual(t, score, 0.0)
	require.LessOrEqual(t, score, 1.0)
	require.GreaterOrEqual(t, bucket.Cost, 0.0)
	require.LessOrEqual(t, bucket.Cost, budget)
}

func TestDemoBucketZeroActivity(t *testing.T) {
	bucket, _, err := demoBucket(domain.DayOf(time.Now()), 0, 0, 0, 100)
	require.NoError(t, err)
	require.Zero(t, bucket.CTR)
	require.Zero(t, bucket.CPC)
	require.Zero(t, bucket.CPV)
	require.Zero(t, bucket.CPM)
}
