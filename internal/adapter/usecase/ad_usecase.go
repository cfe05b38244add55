package usecase

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"pulse-ads/internal/core/domain"
	"pulse-ads/internal/core/formula"
	"pulse-ads/internal/core/port"
	"pulse-ads/internal/metrics"
)

// AdUseCase implements port.AdUseCase. It orchestrates the repository and
// the formula library: event processing, scheduling activation, trending
// ranking and plain CRUD. Per-advertisement mutations are serialized through
// a keyed mutex so concurrent events on the same advertisement never lose an
// update.
type AdUseCase struct {
	repo  port.AdRepository
	m     *metrics.Metrics
	conv  port.CurrencyConverter
	cache port.TrendingCache
	locks keyedMutex
}

// NewAdUseCase creates a usecase over the given repository. The currency
// converter defaults to the identity converter; a trending cache is off
// until one is attached.
func NewAdUseCase(repo port.AdRepository, m *metrics.Metrics) *AdUseCase {
	return &AdUseCase{repo: repo, m: m, conv: IdentityConverter{}}
}

// WithConverter swaps the currency converter used on currency changes.
func (u *AdUseCase) WithConverter(c port.CurrencyConverter) *AdUseCase {
	u.conv = c
	return u
}

// WithTrendingCache attaches a cache for trending responses.
func (u *AdUseCase) WithTrendingCache(c port.TrendingCache) *AdUseCase {
	u.cache = c
	return u
}

// Create stores a new advertisement. The schedule start defaults to now and
// the metric history is seeded with a zeroed bucket for the creation day.
func (u *AdUseCase) Create(ctx context.Context, in port.CreateAdInput) (*domain.Advertisement, error) {
	if in.Budget < 0 || math.IsNaN(in.Budget) {
		return nil, formula.ErrInvalidMetricInput
	}
	now := time.Now().UTC()
	start := in.ScheduleStart
	if start.IsZero() {
		start = now
	}
	ad := &domain.Advertisement{
		ID:            uuid.New(),
		UserID:        in.UserID,
		Title:         in.Title,
		Budget:        in.Budget,
		Currency:      in.Currency,
		Status:        domain.StatusScheduled,
		ScheduleStart: start,
		Result:        []domain.DailyMetric{{Date: domain.DayOf(now)}},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := u.repo.Save(ctx, ad); err != nil {
		return nil, err
	}
	return ad, nil
}

// Get returns one advertisement or port.ErrNotFound.
func (u *AdUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Advertisement, error) {
	ad, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ad == nil {
		return nil, port.ErrNotFound
	}
	return ad, nil
}

// List returns advertisements newest first.
func (u *AdUseCase) List(ctx context.Context, limit, offset int) ([]*domain.Advertisement, error) {
	return u.repo.FindMany(ctx, port.AdFilter{}, limit, offset)
}

// ListByUser returns the user's advertisements newest first.
func (u *AdUseCase) ListByUser(ctx context.Context, userID string) ([]*domain.Advertisement, error) {
	return u.repo.FindMany(ctx, port.AdFilter{UserID: userID}, 0, 0)
}

// Update applies a partial update under the advertisement's lock. A currency
// change converts the budget through the configured converter before any
// explicit budget override is applied.
func (u *AdUseCase) Update(ctx context.Context, id uuid.UUID, in port.UpdateAdInput) (*domain.Advertisement, error) {
	key := id.String()
	u.locks.lock(key)
	defer u.locks.unlock(key)

	ad, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ad == nil {
		return nil, port.ErrNotFound
	}

	// A currency change converts the stored budget, and the converted
	// value wins over an explicit budget in the same update.
	if in.Currency != nil && *in.Currency != ad.Currency {
		converted, err := u.conv.Convert(ctx, ad.Budget, ad.Currency, *in.Currency)
		if err != nil {
			return nil, err
		}
		ad.Budget = converted
		ad.Currency = *in.Currency
	} else if in.Budget != nil {
		if *in.Budget < 0 || math.IsNaN(*in.Budget) {
			return nil, formula.ErrInvalidMetricInput
		}
		ad.Budget = *in.Budget
	}
	if in.Title != nil {
		ad.Title = *in.Title
	}
	if in.Status != nil {
		ad.Status = *in.Status
	}
	if in.ScheduleStart != nil {
		ad.ScheduleStart = *in.ScheduleStart
	}
	ad.UpdatedAt = time.Now().UTC()

	if err = u.repo.Save(ctx, ad); err != nil {
		return nil, err
	}
	return ad, nil
}

// Delete removes one advertisement with its whole metric history.
func (u *AdUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.repo.Delete(ctx, id)
}

// DeleteAllByUser removes every advertisement owned by the user.
func (u *AdUseCase) DeleteAllByUser(ctx context.Context, userID string) (int64, error) {
	return u.repo.DeleteManyByUser(ctx, userID)
}
