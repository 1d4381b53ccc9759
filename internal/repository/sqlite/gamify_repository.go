package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/memodeck/memodeck/internal/models"
	"github.com/memodeck/memodeck/internal/repository"
)

type gamifyRepository struct {
	db *sql.DB
}

// NewGamifyRepository creates a new GamifyRepository implementation
func NewGamifyRepository(db *sql.DB) repository.GamifyRepository {
	return &gamifyRepository{db: db}
}

func (r *gamifyRepository) GetExperience(ctx context.Context) (int, error) {
	var xp int
	err := r.db.QueryRowContext(ctx, `SELECT experience FROM gamify_state WHERE id = 1`).Scan(&xp)
	return xp, err
}

func (r *gamifyRepository) AddExperience(ctx context.Context, amount int) (int, error) {
	var xp int
	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `UPDATE gamify_state SET experience = experience + ? WHERE id = 1`, amount); err != nil {
			return err
		}
		return tx.QueryRowContext(ctx, `SELECT experience FROM gamify_state WHERE id = 1`).Scan(&xp)
	})
	return xp, err
}

func (r *gamifyRepository) UnlockedAchievements(ctx context.Context) (map[string]time.Time, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, unlocked_at FROM achievements`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	unlocked := make(map[string]time.Time)
	for rows.Next() {
		var (
			id string
			at time.Time
		)
		if err := rows.Scan(&id, &at); err != nil {
			return nil, err
		}
		unlocked[id] = at
	}
	return unlocked, rows.Err()
}

func (r *gamifyRepository) UnlockAchievement(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO achievements (id, unlocked_at)
VALUES (?, ?)
ON CONFLICT(id) DO NOTHING
`, id, at)
	return err
}

func (r *gamifyRepository) AppendActivity(ctx context.Context, entry models.ActivityEntry) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO activity_log (kind, message, points, created_at)
VALUES (?, ?, ?, ?)
`, entry.Kind, entry.Message, entry.Points, entry.CreatedAt)
	return err
}

func (r *gamifyRepository) RecentActivity(ctx context.Context, limit int) ([]models.ActivityEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `
SELECT id, kind, message, points, created_at
FROM activity_log
ORDER BY created_at DESC, id DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.ActivityEntry
	for rows.Next() {
		var e models.ActivityEntry
		if err := rows.Scan(&e.ID, &e.Kind, &e.Message, &e.Points, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
