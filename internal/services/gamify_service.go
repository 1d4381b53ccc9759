package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/memodeck/memodeck/internal/errors"
	"github.com/memodeck/memodeck/internal/gamify"
	"github.com/memodeck/memodeck/internal/models"
	"github.com/memodeck/memodeck/internal/repository"
	"github.com/memodeck/memodeck/internal/streak"
)

// GamifyService maintains the experience/achievement ledger. Other services
// feed it counter updates and streak events; unlock rules live in the
// gamify package.
type GamifyService interface {
	Snapshot(ctx context.Context) (*models.GamifySnapshot, error)
	OnReviewProgress(ctx context.Context, totalReviews int) error
	OnStreakEvents(ctx context.Context, events []streak.Event) error
	OnCardCreated(ctx context.Context, totalCards int) error
	OnDeckCreated(ctx context.Context, totalDecks int) error
}

type gamifyService struct {
	repo   repository.GamifyRepository
	ledger *gamify.Ledger
	now    func() time.Time
}

// NewGamifyService creates a new GamifyService with the built-in unlock rules
func NewGamifyService(repo repository.GamifyRepository) GamifyService {
	return &gamifyService{
		repo:   repo,
		ledger: gamify.NewLedger(),
		now:    time.Now,
	}
}

func (s *gamifyService) Snapshot(ctx context.Context) (*models.GamifySnapshot, error) {
	log := zerolog.Ctx(ctx)

	xp, err := s.repo.GetExperience(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get experience")
		return nil, errors.NewInternalError(err)
	}

	unlocked, err := s.repo.UnlockedAchievements(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get achievements")
		return nil, errors.NewInternalError(err)
	}

	activity, err := s.repo.RecentActivity(ctx, 20)
	if err != nil {
		log.Error().Err(err).Msg("failed to get activity log")
		return nil, errors.NewInternalError(err)
	}

	level := gamify.Level(xp)
	snapshot := &models.GamifySnapshot{
		Experience:    xp,
		Level:         level,
		Title:         gamify.Title(level),
		NextLevelXP:   gamify.NextLevelXP(level),
		LevelProgress: gamify.LevelProgress(xp),
		Activity:      activity,
	}
	for _, def := range s.ledger.Defs() {
		a := models.Achievement{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Target:      def.Target,
			XP:          def.XP,
		}
		if at, ok := unlocked[def.ID]; ok {
			a.Unlocked = true
			unlockedAt := at
			a.UnlockedAt = &unlockedAt
		}
		snapshot.Achievements = append(snapshot.Achievements, a)
	}
	return snapshot, nil
}

func (s *gamifyService) OnReviewProgress(ctx context.Context, totalReviews int) error {
	return s.evaluate(ctx, gamify.MetricTotalReviews, totalReviews)
}

func (s *gamifyService) OnCardCreated(ctx context.Context, totalCards int) error {
	return s.evaluate(ctx, gamify.MetricCardsCreated, totalCards)
}

func (s *gamifyService) OnDeckCreated(ctx context.Context, totalDecks int) error {
	return s.evaluate(ctx, gamify.MetricDecksCreated, totalDecks)
}

func (s *gamifyService) OnStreakEvents(ctx context.Context, events []streak.Event) error {
	log := zerolog.Ctx(ctx)

	for _, ev := range events {
		kind := "streak"
		if ev.Kind == streak.EventBroken {
			kind = "streak_broken"
		}
		entry := models.ActivityEntry{
			Kind:      kind,
			Message:   gamify.StreakMessage(ev),
			CreatedAt: s.now(),
		}
		if err := s.repo.AppendActivity(ctx, entry); err != nil {
			log.Error().Err(err).Str("kind", kind).Msg("failed to record streak activity")
			return errors.NewInternalError(err)
		}

		if ev.Kind == streak.EventContinued || ev.Kind == streak.EventMilestone {
			if err := s.evaluate(ctx, gamify.MetricStreakDays, ev.Days); err != nil {
				return err
			}
		}
	}
	return nil
}

// evaluate checks threshold rules for a metric and applies any unlocks:
// achievement row, experience, activity entries, level-up detection.
func (s *gamifyService) evaluate(ctx context.Context, metric gamify.Metric, value int) error {
	log := zerolog.Ctx(ctx)

	unlockedAt, err := s.repo.UnlockedAchievements(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load unlocked achievements")
		return errors.NewInternalError(err)
	}
	unlocked := make(map[string]bool, len(unlockedAt))
	for id := range unlockedAt {
		unlocked[id] = true
	}

	for _, def := range s.ledger.Evaluate(metric, value, unlocked) {
		now := s.now()
		if err := s.repo.UnlockAchievement(ctx, def.ID, now); err != nil {
			log.Error().Err(err).Str("achievement", def.ID).Msg("failed to unlock achievement")
			return errors.NewInternalError(err)
		}

		newXP, err := s.repo.AddExperience(ctx, def.XP)
		if err != nil {
			log.Error().Err(err).Msg("failed to add experience")
			return errors.NewInternalError(err)
		}

		log.Info().Str("achievement", def.ID).Int("xp", def.XP).Msg("achievement unlocked")
		if err := s.repo.AppendActivity(ctx, models.ActivityEntry{
			Kind:      "achievement",
			Message:   fmt.Sprintf("Unlocked achievement: %s - %s", def.Name, def.Description),
			Points:    def.XP,
			CreatedAt: now,
		}); err != nil {
			log.Error().Err(err).Msg("failed to record achievement activity")
			return errors.NewInternalError(err)
		}

		oldLevel := gamify.Level(newXP - def.XP)
		newLevel := gamify.Level(newXP)
		if newLevel > oldLevel {
			if err := s.repo.AppendActivity(ctx, models.ActivityEntry{
				Kind:      "level_up",
				Message:   fmt.Sprintf("Reached level %d: %s", newLevel, gamify.Title(newLevel)),
				CreatedAt: now,
			}); err != nil {
				log.Error().Err(err).Msg("failed to record level-up activity")
				return errors.NewInternalError(err)
			}
		}
	}
	return nil
}
