package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"pulse-ads/internal/core/domain"
)

// AdUseCase defines the business operations exposed by the ads engine. This
// interface represents the primary port into the application domain.
type AdUseCase interface {
	// Create stores a new advertisement. The schedule start defaults to
	// the creation time and the metric history is seeded with a zeroed
	// bucket for the creation day.
	Create(ctx context.Context, in CreateAdInput) (*domain.Advertisement, error)

	// Get returns one advertisement. Returns ErrNotFound when absent.
	Get(ctx context.Context, id uuid.UUID) (*domain.Advertisement, error)

	// List returns advertisements newest first. limit <= 0 means no limit.
	List(ctx context.Context, limit, offset int) ([]*domain.Advertisement, error)

	// ListByUser returns every advertisement owned by the user, newest first.
	ListByUser(ctx context.Context, userID string) ([]*domain.Advertisement, error)

	// Update applies a partial update. When the currency changes the budget
	// is converted through the configured CurrencyConverter.
	Update(ctx context.Context, id uuid.UUID, in UpdateAdInput) (*domain.Advertisement, error)

	// Delete removes one advertisement and its whole metric history.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteAllByUser removes every advertisement owned by the user.
	DeleteAllByUser(ctx context.Context, userID string) (int64, error)

	// RecordImpression applies one impression event to today's bucket and
	// returns the updated advertisement. The bucket counters, the derived
	// figures and the advertisement score are updated together; no partial
	// update is observable after the call returns.
	RecordImpression(ctx context.Context, id uuid.UUID) (*domain.Advertisement, error)

	// RecordClick is RecordImpression plus a click: both counters grow by
	// exactly one, since every click implies an impression.
	RecordClick(ctx context.Context, id uuid.UUID) (*domain.Advertisement, error)

	// Trending ranks the most recently created advertisements by their
	// trending score, descending, ties keeping selection order. No
	// candidates yields an empty slice, not an error.
	Trending(ctx context.Context) ([]TrendingAd, error)

	// RunSchedulingTick activates every advertisement whose schedule start
	// falls within the calendar day of now and whose status is not already
	// active. Safe to invoke at any cadence. Returns the selected set.
	RunSchedulingTick(ctx context.Context, now time.Time) ([]*domain.Advertisement, error)
}

// CreateAdInput carries the caller-supplied fields for a new advertisement.
type CreateAdInput struct {
	UserID        string
	Title         string
	Budget        float64
	Currency      string
	ScheduleStart time.Time // zero means "now"
}

// UpdateAdInput carries a partial update; nil fields are left untouched.
type UpdateAdInput struct {
	Title         *string
	Budget        *float64
	Currency      *string
	Status        *domain.Status
	ScheduleStart *time.Time
}

// TrendingAd pairs an advertisement with its computed ranking score. The
// score is ephemeral; it is never written back to the advertisement.
type TrendingAd struct {
	Ad    *domain.Advertisement `json:"ad"`
	Score float64               `json:"score"`
}
