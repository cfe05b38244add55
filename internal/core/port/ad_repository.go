package port

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"pulse-ads/internal/core/domain"
)

// ErrNotFound is returned when a referenced advertisement does not exist.
var ErrNotFound = errors.New("advertisement not found")

// AdFilter narrows FindMany. Zero-valued fields are ignored. The schedule
// window bounds are inclusive.
type AdFilter struct {
	UserID            string
	ScheduleStartFrom time.Time
	ScheduleStartTo   time.Time
}

// AdRepository is the document-store contract the core runs against. It is
// an outbound port in hexagonal architecture; no schema-specific behaviour
// is assumed beyond storing the Advertisement with its embedded metric
// history. Save is a whole-document upsert and must be atomic: a reader
// never observes a partially written document. Atomicity across the
// read-modify-write of one event is the caller's responsibility.
type AdRepository interface {
	// FindByID returns the advertisement or (nil, nil) when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Advertisement, error)
	// Save upserts the whole advertisement document.
	Save(ctx context.Context, ad *domain.Advertisement) error
	// FindMany returns advertisements matching the filter, newest first by
	// creation time. limit <= 0 means no limit.
	FindMany(ctx context.Context, f AdFilter, limit, offset int) ([]*domain.Advertisement, error)
	// Delete removes one advertisement. Returns ErrNotFound when absent.
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteManyByUser removes every advertisement owned by the user and
	// reports how many were deleted.
	DeleteManyByUser(ctx context.Context, userID string) (int64, error)
}
