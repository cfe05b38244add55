package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"pulse-ads/internal/adapter/postgres"
	"pulse-ads/internal/core/domain"
	"pulse-ads/internal/core/formula"
)

// Seed inserts demo advertisements with a few days of metric history.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	repo := postgres.NewAdRepository(pool)
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()

	statuses := []domain.Status{domain.StatusScheduled, domain.StatusActive, domain.StatusDraft}
	for i := 1; i <= 12; i++ {
		created := now.AddDate(0, 0, -r.Intn(14))
		ad := &domain.Advertisement{
			ID:            uuid.New(),
			UserID:        fmt.Sprintf("user-%d", r.Intn(4)+1),
			Title:         fmt.Sprintf("Demo advertisement %d", i),
			Budget:        float64(100 * (r.Intn(10) + 1)),
			Currency:      "USD",
			Status:        statuses[r.Intn(len(statuses))],
			ScheduleStart: created,
			CreatedAt:     created,
			UpdatedAt:     created,
		}
		// a few days of activity, oldest first
		days := r.Intn(5) + 1
		for d := days; d >= 1; d-- {
			impressions := int64(r.Intn(500))
			clicks := int64(0)
			if impressions > 0 {
				clicks = int64(r.Intn(int(impressions)))
			}
			bucket, score, err := demoBucket(
				domain.DayOf(created.AddDate(0, 0, days-d)),
				impressions, clicks, int64(r.Intn(10)), ad.Budget,
			)
			if err != nil {
				return err
			}
			ad.Result = append(ad.Result, bucket)
			ad.Score = score
		}
		if err := repo.Save(ctx, ad); err != nil {
			return err
		}
	}
	return nil
}

// demoBucket builds one day's bucket with the derived figures computed the
// same way event processing computes them, so seeded documents satisfy the
// counters-to-figures consistency the rest of the engine assumes.
func demoBucket(date time.Time, impressions, clicks, conversions int64, budget float64) (domain.DailyMetric, float64, error) {
	fig, err := formula.CostFigures(impressions, clicks, budget)
	if err != nil {
		return domain.DailyMetric{}, 0, err
	}
	score, err := formula.AdvertiseScore(fig.CTR, fig.Cost, impressions)
	if err != nil {
		return domain.DailyMetric{}, 0, err
	}
	discounted, err := formula.DiscountCost(budget, score)
	if err != nil {
		return domain.DailyMetric{}, 0, err
	}
	return domain.DailyMetric{
		Date:        date,
		Impressions: impressions,
		Clicks:      clicks,
		Conversions: conversions,
		CTR:         fig.CTR,
		CPC:         fig.CPC,
		CPV:         fig.CPV,
		CPM:         fig.CPM,
		Cost:        discounted,
	}, score, nil
}
