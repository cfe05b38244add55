package usecase

import (
	"context"
	"sort"
	"time"

	"pulse-ads/internal/core/domain"
	"pulse-ads/internal/core/formula"
	"pulse-ads/internal/core/port"
)

// trendingWindow is the size of the candidate set: the N most recently
// created advertisements enter the ranking.
const trendingWindow = 10

// Trending ranks the most recently created advertisements descending by
// trending score. The sort is stable, so equal scores keep their
// newest-first selection order. An empty candidate set yields an empty
// slice. Responses are served from the cache when one is attached and warm;
// cache failures fall through to a fresh computation.
func (u *AdUseCase) Trending(ctx context.Context) ([]port.TrendingAd, error) {
	if u.cache != nil {
		if cached, ok, err := u.cache.Get(ctx); err == nil && ok {
			u.m.TrendingCacheHits.Inc()
			return cached, nil
		}
	}

	start := time.Now()
	ads, err := u.repo.FindMany(ctx, port.AdFilter{}, trendingWindow, 0)
	if err != nil {
		return nil, err
	}

	ranked := make([]port.TrendingAd, 0, len(ads))
	for _, ad := range ads {
		score, err := u.adScore(ad)
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, port.TrendingAd{Ad: ad, Score: score})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	u.m.TrendingDuration.Observe(time.Since(start).Seconds())

	if u.cache != nil {
		// best effort; the adapter logs its own failures
		_ = u.cache.Set(ctx, ranked)
	}
	return ranked, nil
}

// adScore computes one candidate's ranking score: the trending score of its
// latest bucket's counters combined with the lifetime totals, averaged by
// the trending divisor.
func (u *AdUseCase) adScore(ad *domain.Advertisement) (float64, error) {
	interactions, totalCost := ad.Totals()
	var latest domain.DailyMetric
	if b := ad.Latest(); b != nil {
		latest = *b
	}
	raw, err := formula.TrendingScore(
		latest.Clicks,
		latest.Impressions,
		latest.Conversions,
		totalCost,
		float64(interactions),
	)
	if err != nil {
		return 0, err
	}
	return raw / formula.TrendingDivisor, nil
}
