package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/memodeck/memodeck/internal/models"
	"github.com/memodeck/memodeck/internal/services"
	"github.com/memodeck/memodeck/internal/streak"
	"github.com/memodeck/memodeck/internal/testutil/mocks"
)

func TestOnReviewProgressUnlocksFirstReview(t *testing.T) {
	repo := new(mocks.MockGamifyRepository)
	svc := services.NewGamifyService(repo)

	repo.On("UnlockedAchievements", mock.Anything).Return(map[string]time.Time{}, nil)
	repo.On("UnlockAchievement", mock.Anything, "first_review", mock.Anything).Return(nil)
	repo.On("AddExperience", mock.Anything, 10).Return(10, nil)
	repo.On("AppendActivity", mock.Anything, mock.MatchedBy(func(e models.ActivityEntry) bool {
		return e.Kind == "achievement" && e.Points == 10
	})).Return(nil)

	require.NoError(t, svc.OnReviewProgress(context.Background(), 1))
	repo.AssertExpectations(t)
}

func TestEvaluateSkipsAlreadyUnlocked(t *testing.T) {
	repo := new(mocks.MockGamifyRepository)
	svc := services.NewGamifyService(repo)

	repo.On("UnlockedAchievements", mock.Anything).Return(map[string]time.Time{
		"first_review": time.Now(),
	}, nil)

	require.NoError(t, svc.OnReviewProgress(context.Background(), 1))
	repo.AssertNotCalled(t, "UnlockAchievement", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "AddExperience", mock.Anything, mock.Anything)
}

func TestEvaluateRecordsLevelUp(t *testing.T) {
	repo := new(mocks.MockGamifyRepository)
	svc := services.NewGamifyService(repo)

	// 90 XP before, first_deck is worth 20: crossing 100 XP reaches level 2.
	repo.On("UnlockedAchievements", mock.Anything).Return(map[string]time.Time{}, nil)
	repo.On("UnlockAchievement", mock.Anything, "first_deck", mock.Anything).Return(nil)
	repo.On("AddExperience", mock.Anything, 20).Return(110, nil)
	repo.On("AppendActivity", mock.Anything, mock.MatchedBy(func(e models.ActivityEntry) bool {
		return e.Kind == "achievement"
	})).Return(nil)
	repo.On("AppendActivity", mock.Anything, mock.MatchedBy(func(e models.ActivityEntry) bool {
		return e.Kind == "level_up"
	})).Return(nil)

	require.NoError(t, svc.OnDeckCreated(context.Background(), 1))
	repo.AssertExpectations(t)
}

func TestOnStreakEvents(t *testing.T) {
	repo := new(mocks.MockGamifyRepository)
	svc := services.NewGamifyService(repo)

	repo.On("AppendActivity", mock.Anything, mock.MatchedBy(func(e models.ActivityEntry) bool {
		return e.Kind == "streak"
	})).Return(nil)
	repo.On("UnlockedAchievements", mock.Anything).Return(map[string]time.Time{}, nil)
	repo.On("UnlockAchievement", mock.Anything, "daily_streak_3", mock.Anything).Return(nil)
	repo.On("AddExperience", mock.Anything, 50).Return(50, nil)
	repo.On("AppendActivity", mock.Anything, mock.MatchedBy(func(e models.ActivityEntry) bool {
		return e.Kind == "achievement"
	})).Return(nil)

	events := []streak.Event{{Kind: streak.EventContinued, Days: 3}}
	require.NoError(t, svc.OnStreakEvents(context.Background(), events))
	repo.AssertExpectations(t)
}

func TestOnStreakEventsBroken(t *testing.T) {
	repo := new(mocks.MockGamifyRepository)
	svc := services.NewGamifyService(repo)

	repo.On("AppendActivity", mock.Anything, mock.MatchedBy(func(e models.ActivityEntry) bool {
		return e.Kind == "streak_broken"
	})).Return(nil)

	events := []streak.Event{{Kind: streak.EventBroken, Days: 12}}
	require.NoError(t, svc.OnStreakEvents(context.Background(), events))
	// A broken streak never evaluates achievements.
	repo.AssertNotCalled(t, "UnlockedAchievements", mock.Anything)
}

func TestSnapshot(t *testing.T) {
	repo := new(mocks.MockGamifyRepository)
	svc := services.NewGamifyService(repo)

	unlockedAt := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	repo.On("GetExperience", mock.Anything).Return(150, nil)
	repo.On("UnlockedAchievements", mock.Anything).Return(map[string]time.Time{
		"first_review": unlockedAt,
	}, nil)
	repo.On("RecentActivity", mock.Anything, 20).Return([]models.ActivityEntry{
		{Kind: "achievement", Message: "Unlocked achievement: First Review"},
	}, nil)

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 150, snap.Experience)
	assert.Equal(t, 2, snap.Level)
	assert.Equal(t, "Memory Novice", snap.Title)
	assert.Equal(t, 900, snap.NextLevelXP)
	assert.Len(t, snap.Activity, 1)

	var unlockedCount int
	for _, a := range snap.Achievements {
		if a.Unlocked {
			unlockedCount++
			assert.Equal(t, "first_review", a.ID)
			require.NotNil(t, a.UnlockedAt)
			assert.Equal(t, unlockedAt, *a.UnlockedAt)
		}
	}
	assert.Equal(t, 1, unlockedCount)
	assert.Greater(t, len(snap.Achievements), 1)
}
