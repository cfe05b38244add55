package usecase

import (
	"context"
	"time"

	"pulse-ads/internal/core/domain"
	"pulse-ads/internal/core/port"
)

// RunSchedulingTick selects every advertisement whose schedule start falls
// within the UTC calendar day of now, newest first, and activates each one
// whose status is not already active. The activation condition is
// idempotent, so the tick is safe to run at any cadence: a missed or
// duplicated trigger never loses or repeats an activation.
func (u *AdUseCase) RunSchedulingTick(ctx context.Context, now time.Time) ([]*domain.Advertisement, error) {
	startOfDay := domain.DayOf(now)
	endOfDay := startOfDay.Add(24*time.Hour - time.Nanosecond)

	ads, err := u.repo.FindMany(ctx, port.AdFilter{
		ScheduleStartFrom: startOfDay,
		ScheduleStartTo:   endOfDay,
	}, 0, 0)
	if err != nil {
		return nil, err
	}

	for _, ad := range ads {
		if ad.Status == domain.StatusActive {
			continue
		}
		ad.Status = domain.StatusActive
		ad.UpdatedAt = now.UTC()
		if err = u.repo.Save(ctx, ad); err != nil {
			return nil, err
		}
		u.m.Activations.Inc()
	}
	return ads, nil
}
