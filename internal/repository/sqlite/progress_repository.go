package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/memodeck/memodeck/internal/models"
	"github.com/memodeck/memodeck/internal/repository"
)

type progressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new ProgressRepository implementation
func NewProgressRepository(db *sql.DB) repository.ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Get(ctx context.Context, cardID string) (*models.ReviewProgress, error) {
	var (
		p            models.ReviewProgress
		lastReviewed sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, `
SELECT card_id, ease_factor, interval_days, repetitions, due_at, last_reviewed
FROM card_progress
WHERE card_id = ?
`, cardID).Scan(&p.CardID, &p.EaseFactor, &p.Interval, &p.Repetitions, &p.DueAt, &lastReviewed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if lastReviewed.Valid {
		t := lastReviewed.Time
		p.LastReviewed = &t
	}
	return &p, nil
}

func (r *progressRepository) Set(ctx context.Context, cardID string, progress models.ReviewProgress) error {
	var lastReviewed interface{}
	if progress.LastReviewed != nil {
		lastReviewed = *progress.LastReviewed
	}
	_, err := r.db.ExecContext(ctx, `
INSERT INTO card_progress (card_id, ease_factor, interval_days, repetitions, due_at, last_reviewed)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(card_id) DO UPDATE SET
    ease_factor = excluded.ease_factor,
    interval_days = excluded.interval_days,
    repetitions = excluded.repetitions,
    due_at = excluded.due_at,
    last_reviewed = excluded.last_reviewed
`, cardID, progress.EaseFactor, progress.Interval, progress.Repetitions, progress.DueAt, lastReviewed)
	return err
}

func (r *progressRepository) Delete(ctx context.Context, cardID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM card_progress WHERE card_id = ?`, cardID)
	return err
}

func (r *progressRepository) All(ctx context.Context) (map[string]models.ReviewProgress, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT card_id, ease_factor, interval_days, repetitions, due_at, last_reviewed
FROM card_progress
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	all := make(map[string]models.ReviewProgress)
	for rows.Next() {
		var (
			p            models.ReviewProgress
			lastReviewed sql.NullTime
		)
		if err := rows.Scan(&p.CardID, &p.EaseFactor, &p.Interval, &p.Repetitions, &p.DueAt, &lastReviewed); err != nil {
			return nil, err
		}
		if lastReviewed.Valid {
			t := lastReviewed.Time
			p.LastReviewed = &t
		}
		all[p.CardID] = p
	}
	return all, rows.Err()
}
