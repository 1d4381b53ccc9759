package repository

import (
	"context"
	"time"

	"github.com/memodeck/memodeck/internal/models"
)

// DeckRepository handles deck data access
type DeckRepository interface {
	Get(ctx context.Context, id string) (*models.Deck, error)
	List(ctx context.Context) ([]models.Deck, error)
	Insert(ctx context.Context, deck models.Deck) error
	Update(ctx context.Context, deck models.Deck) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// CardRepository handles card data access
type CardRepository interface {
	Get(ctx context.Context, id string) (*models.Card, error)
	List(ctx context.Context, filter models.CardFilter) ([]models.Card, error)
	Insert(ctx context.Context, card models.Card) error
	Update(ctx context.Context, card models.Card) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// ProgressRepository is the progress store adapter: per-card scheduling
// state keyed by card id. Get returns (nil, nil) for a card that has never
// been reviewed.
type ProgressRepository interface {
	Get(ctx context.Context, cardID string) (*models.ReviewProgress, error)
	Set(ctx context.Context, cardID string, progress models.ReviewProgress) error
	Delete(ctx context.Context, cardID string) error
	All(ctx context.Context) (map[string]models.ReviewProgress, error)
}

// StatsRepository handles aggregate study statistics and streak state
type StatsRepository interface {
	GetStats(ctx context.Context) (*models.StudyStats, error)
	SetDailyGoal(ctx context.Context, goal int) error
	RecordReview(ctx context.Context, date string, correct bool) error
	History(ctx context.Context, limit int) ([]models.DailyStat, error)
	TodayReviewed(ctx context.Context, date string) (int, error)
	GetStreak(ctx context.Context) (*models.StreakState, error)
	SaveStreak(ctx context.Context, state models.StreakState) error
}

// GamifyRepository handles the experience/achievement ledger state
type GamifyRepository interface {
	GetExperience(ctx context.Context) (int, error)
	AddExperience(ctx context.Context, amount int) (int, error)
	UnlockedAchievements(ctx context.Context) (map[string]time.Time, error)
	UnlockAchievement(ctx context.Context, id string, at time.Time) error
	AppendActivity(ctx context.Context, entry models.ActivityEntry) error
	RecentActivity(ctx context.Context, limit int) ([]models.ActivityEntry, error)
}
