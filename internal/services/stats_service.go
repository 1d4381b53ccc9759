package services

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/memodeck/memodeck/internal/errors"
	"github.com/memodeck/memodeck/internal/models"
	"github.com/memodeck/memodeck/internal/repository"
	"github.com/memodeck/memodeck/internal/srs"
	"github.com/memodeck/memodeck/internal/streak"
)

// StatsService exposes the read-only study statistics snapshot
type StatsService interface {
	Snapshot(ctx context.Context) (*models.StatsSnapshot, error)
	SetDailyGoal(ctx context.Context, goal int) error
}

type statsService struct {
	statsRepo    repository.StatsRepository
	progressRepo repository.ProgressRepository
	cardRepo     repository.CardRepository
	historyLimit int
	now          func() time.Time
}

// NewStatsService creates a new StatsService. historyLimit bounds the
// daily-history window in the snapshot; values below 1 fall back to 30.
func NewStatsService(
	statsRepo repository.StatsRepository,
	progressRepo repository.ProgressRepository,
	cardRepo repository.CardRepository,
	historyLimit int,
) StatsService {
	if historyLimit < 1 {
		historyLimit = 30
	}
	return &statsService{
		statsRepo:    statsRepo,
		progressRepo: progressRepo,
		cardRepo:     cardRepo,
		historyLimit: historyLimit,
		now:          time.Now,
	}
}

func (s *statsService) Snapshot(ctx context.Context) (*models.StatsSnapshot, error) {
	log := zerolog.Ctx(ctx)

	stats, err := s.statsRepo.GetStats(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get study stats")
		return nil, errors.NewInternalError(err)
	}

	history, err := s.statsRepo.History(ctx, s.historyLimit)
	if err != nil {
		log.Error().Err(err).Msg("failed to get daily history")
		return nil, errors.NewInternalError(err)
	}

	streakState, err := s.statsRepo.GetStreak(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get streak state")
		return nil, errors.NewInternalError(err)
	}

	today := s.now().UTC().Format(streak.DateLayout)
	todayLearned, err := s.statsRepo.TodayReviewed(ctx, today)
	if err != nil {
		log.Error().Err(err).Msg("failed to get today's review count")
		return nil, errors.NewInternalError(err)
	}

	totalCards, err := s.cardRepo.Count(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count cards")
		return nil, errors.NewInternalError(err)
	}
	progress, err := s.progressRepo.All(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load progress")
		return nil, errors.NewInternalError(err)
	}

	todayProgress := 0
	if stats.DailyGoal > 0 {
		todayProgress = int(math.Round(float64(todayLearned) / float64(stats.DailyGoal) * 100))
		if todayProgress > 100 {
			todayProgress = 100
		}
	}

	return &models.StatsSnapshot{
		StudyStats:    *stats,
		Efficiency:    srs.ReviewEfficiency(*stats),
		TodayLearned:  todayLearned,
		TodayProgress: todayProgress,
		History:       history,
		Streak:        *streakState,
		Insights:      srs.AnalyzeProgress(totalCards, progress),
	}, nil
}

func (s *statsService) SetDailyGoal(ctx context.Context, goal int) error {
	if goal < 1 || goal > 1000 {
		return errors.NewInvalidInputError("daily_goal", "must be between 1 and 1000")
	}
	if err := s.statsRepo.SetDailyGoal(ctx, goal); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to set daily goal")
		return errors.NewInternalError(err)
	}
	return nil
}
