package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"pulse-ads/internal/core/domain"
	"pulse-ads/internal/core/formula"
	"pulse-ads/internal/core/port"
)

// RecordImpression applies one impression to today's bucket.
func (u *AdUseCase) RecordImpression(ctx context.Context, id uuid.UUID) (*domain.Advertisement, error) {
	ad, err := u.applyEvent(ctx, id, false)
	if err != nil {
		return nil, err
	}
	u.m.Impressions.Inc()
	return ad, nil
}

// RecordClick applies one click to today's bucket. Every click implies an
// impression, so both counters grow by one.
func (u *AdUseCase) RecordClick(ctx context.Context, id uuid.UUID) (*domain.Advertisement, error) {
	ad, err := u.applyEvent(ctx, id, true)
	if err != nil {
		return nil, err
	}
	u.m.Clicks.Inc()
	return ad, nil
}

// applyEvent is the event processor: under the advertisement's lock it
// fetches the document, gets or creates today's bucket, bumps the counters,
// recomputes the derived figures and the advertise score, stores the
// discounted cost on the bucket and persists the whole document. All
// mutation happens on the freshly loaded copy, so any error before the save
// leaves persisted state untouched.
func (u *AdUseCase) applyEvent(ctx context.Context, id uuid.UUID, click bool) (*domain.Advertisement, error) {
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

	now := time.Now()
	b := ad.BucketFor(now)
	b.Impressions++
	if click {
		b.Clicks++
	}

	fig, err := formula.CostFigures(b.Impressions, b.Clicks, ad.Budget)
	if err != nil {
		return nil, err
	}
	score, err := formula.AdvertiseScore(fig.CTR, fig.Cost, b.Impressions)
	if err != nil {
		return nil, err
	}
	discounted, err := formula.DiscountCost(ad.Budget, score)
	if err != nil {
		return nil, err
	}

	b.CTR = fig.CTR
	b.CPC = fig.CPC
	b.CPV = fig.CPV
	b.CPM = fig.CPM
	b.Cost = discounted
	ad.Score = score
	ad.UpdatedAt = now.UTC()

	if err = u.repo.Save(ctx, ad); err != nil {
		return nil, err
	}
	return ad, nil
}
