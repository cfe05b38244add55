package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pulse-ads/internal/core/domain"
	"pulse-ads/internal/core/port"
)

// AdRepository implements port.AdRepository using pgxpool for PostgreSQL.
// Each advertisement is stored as a single row with its metric history in a
// JSONB column, so Save is one upsert statement and the document-store
// atomicity guarantee comes from the statement itself.
type AdRepository struct {
	pool *pgxpool.Pool
}

// NewAdRepository returns a new repository instance.
func NewAdRepository(pool *pgxpool.Pool) *AdRepository {
	return &AdRepository{pool: pool}
}

const adColumns = `id, user_id, title, budget, currency, status, schedule_start, score, result, created_at, updated_at`

// FindByID returns the advertisement or (nil, nil) when absent.
func (r *AdRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Advertisement, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+adColumns+` FROM advertisements WHERE id = $1`, id)
	ad, err := scanAd(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ad, nil
}

// Save upserts the whole advertisement document.
func (r *AdRepository) Save(ctx context.Context, ad *domain.Advertisement) error {
	result, err := json.Marshal(ad.Result)
	if err != nil {
		return fmt.Errorf("marshal metric history: %w", err)
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO advertisements
    (id, user_id, title, budget, currency, status, schedule_start, score, result, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
ON CONFLICT (id) DO UPDATE SET
    user_id = EXCLUDED.user_id,
    title = EXCLUDED.title,
    budget = EXCLUDED.budget,
    currency = EXCLUDED.currency,
    status = EXCLUDED.status,
    schedule_start = EXCLUDED.schedule_start,
    score = EXCLUDED.score,
    result = EXCLUDED.result,
    updated_at = EXCLUDED.updated_at`,
		ad.ID, ad.UserID, ad.Title, ad.Budget, ad.Currency, string(ad.Status),
		ad.ScheduleStart, ad.Score, result, ad.CreatedAt, ad.UpdatedAt)
	return err
}

// FindMany returns advertisements matching the filter, newest first by
// creation time. limit <= 0 means no limit.
func (r *AdRepository) FindMany(ctx context.Context, f port.AdFilter, limit, offset int) ([]*domain.Advertisement, error) {
	query := `SELECT ` + adColumns + ` FROM advertisements WHERE true`
	args := []interface{}{}
	if f.UserID != "" {
		args = append(args, f.UserID)
		query += fmt.Sprintf(" AND user_id = $%d", len(args))
	}
	if !f.ScheduleStartFrom.IsZero() {
		args = append(args, f.ScheduleStartFrom)
		query += fmt.Sprintf(" AND schedule_start >= $%d", len(args))
	}
	if !f.ScheduleStartTo.IsZero() {
		args = append(args, f.ScheduleStartTo)
		query += fmt.Sprintf(" AND schedule_start <= $%d", len(args))
	}
	query += " ORDER BY created_at DESC"
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if offset > 0 {
		args = append(args, offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Advertisement, error) {
		return scanAd(row)
	})
}

// Delete removes one advertisement. Returns port.ErrNotFound when absent.
func (r *AdRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM advertisements WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// DeleteManyByUser removes every advertisement owned by the user.
func (r *AdRepository) DeleteManyByUser(ctx context.Context, userID string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM advertisements WHERE user_id = $1`, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// scanAd reads one row into a domain.Advertisement, decoding the JSONB
// metric history.
func scanAd(row pgx.Row) (*domain.Advertisement, error) {
	var (
		ad     domain.Advertisement
		status string
		result []byte
	)
	err := row.Scan(
		&ad.ID,
		&ad.UserID,
		&ad.Title,
		&ad.Budget,
		&ad.Currency,
		&status,
		&ad.ScheduleStart,
		&ad.Score,
		&result,
		&ad.CreatedAt,
		&ad.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	ad.Status = domain.Status(status)
	if len(result) > 0 {
		if err = json.Unmarshal(result, &ad.Result); err != nil {
			return nil, fmt.Errorf("unmarshal metric history: %w", err)
		}
	}
	return &ad, nil
}
