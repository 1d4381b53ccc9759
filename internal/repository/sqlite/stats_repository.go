package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/memodeck/memodeck/internal/models"
	"github.com/memodeck/memodeck/internal/repository"
)

type statsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new StatsRepository implementation
func NewStatsRepository(db *sql.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) GetStats(ctx context.Context) (*models.StudyStats, error) {
	var s models.StudyStats
	err := r.db.QueryRowContext(ctx, `
SELECT total_reviews, correct_reviews, daily_goal
FROM study_stats
WHERE id = 1
`).Scan(&s.TotalReviews, &s.CorrectReviews, &s.DailyGoal)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *statsRepository) SetDailyGoal(ctx context.Context, goal int) error {
	_, err := r.db.ExecContext(ctx, `UPDATE study_stats SET daily_goal = ? WHERE id = 1`, goal)
	return err
}

// RecordReview bumps the aggregate counters and the per-day history row in
// one transaction so a partial write cannot skew the totals.
func (r *statsRepository) RecordReview(ctx context.Context, date string, correct bool) error {
	correctDelta := 0
	if correct {
		correctDelta = 1
	}
	return tx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
UPDATE study_stats
SET total_reviews = total_reviews + 1, correct_reviews = correct_reviews + ?
WHERE id = 1
`, correctDelta); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `
INSERT INTO daily_stats (date, cards_reviewed, correct_count)
VALUES (?, 1, ?)
ON CONFLICT(date) DO UPDATE SET
    cards_reviewed = cards_reviewed + 1,
    correct_count = correct_count + excluded.correct_count
`, date, correctDelta)
		return err
	})
}

func (r *statsRepository) History(ctx context.Context, limit int) ([]models.DailyStat, error) {
	if limit <= 0 {
		limit = 30
	}
	rows, err := r.db.QueryContext(ctx, `
SELECT date, cards_reviewed, correct_count
FROM daily_stats
ORDER BY date DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []models.DailyStat
	for rows.Next() {
		var d models.DailyStat
		if err := rows.Scan(&d.Date, &d.CardsReviewed, &d.CorrectCount); err != nil {
			return nil, err
		}
		history = append(history, d)
	}
	return history, rows.Err()
}

func (r *statsRepository) TodayReviewed(ctx context.Context, date string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT cards_reviewed FROM daily_stats WHERE date = ?`, date).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return n, err
}

func (r *statsRepository) GetStreak(ctx context.Context) (*models.StreakState, error) {
	var s models.StreakState
	err := r.db.QueryRowContext(ctx, `
SELECT current, last_study_date, highest
FROM streak_state
WHERE id = 1
`).Scan(&s.Current, &s.LastStudyDate, &s.Highest)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *statsRepository) SaveStreak(ctx context.Context, state models.StreakState) error {
	_, err := r.db.ExecContext(ctx, `
UPDATE streak_state
SET current = ?, last_study_date = ?, highest = ?
WHERE id = 1
`, state.Current, state.LastStudyDate, state.Highest)
	return err
}
