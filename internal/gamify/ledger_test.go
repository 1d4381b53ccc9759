package gamify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memodeck/memodeck/internal/streak"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{399, 2},
		{400, 3},
		{900, 4},
		{2500, 6},
		{-10, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Level(tt.xp), "xp=%d", tt.xp)
	}
}

func TestNextLevelXP(t *testing.T) {
	assert.Equal(t, 400, NextLevelXP(1))
	assert.Equal(t, 900, NextLevelXP(2))
}

func TestLevelProgress(t *testing.T) {
	assert.Equal(t, 0, LevelProgress(100))  // exactly at level 2
	assert.Equal(t, 50, LevelProgress(250)) // halfway from 100 to 400
	assert.Equal(t, 100, LevelProgress(399))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Beginner", Title(0))
	assert.Equal(t, "Memory Novice", Title(1))
	assert.Equal(t, "Memory Novice", Title(4))
	assert.Equal(t, "Memory Apprentice", Title(5))
	assert.Equal(t, "Total Recall", Title(60))
}

func TestLedgerEvaluate(t *testing.T) {
	ledger := NewLedger()

	// Nothing unlocked, one review done.
	hits := ledger.Evaluate(MetricTotalReviews, 1, nil)
	require.Len(t, hits, 1)
	assert.Equal(t, "first_review", hits[0].ID)

	// Jumping straight past several thresholds unlocks all of them at once.
	hits = ledger.Evaluate(MetricTotalReviews, 150, map[string]bool{"first_review": true})
	require.Len(t, hits, 2)
	assert.Equal(t, "review_10", hits[0].ID)
	assert.Equal(t, "review_100", hits[1].ID)

	// Already-unlocked rules never fire again.
	hits = ledger.Evaluate(MetricTotalReviews, 150, map[string]bool{
		"first_review": true,
		"review_10":    true,
		"review_100":   true,
	})
	assert.Empty(t, hits)

	// Metrics do not cross-fire.
	hits = ledger.Evaluate(MetricStreakDays, 1000, nil)
	for _, h := range hits {
		assert.Equal(t, MetricStreakDays, h.Metric)
	}
}

func TestLedgerCustomDefs(t *testing.T) {
	ledger := NewLedger(AchievementDef{
		ID: "custom", Metric: MetricDecksCreated, Target: 2, XP: 5,
	})

	assert.Empty(t, ledger.Evaluate(MetricDecksCreated, 1, nil))
	hits := ledger.Evaluate(MetricDecksCreated, 2, nil)
	require.Len(t, hits, 1)
	assert.Equal(t, "custom", hits[0].ID)
}

func TestStreakMessage(t *testing.T) {
	assert.Equal(t, "Started a study streak", StreakMessage(streak.Event{Kind: streak.EventStarted, Days: 1}))
	assert.Equal(t, "Studied 4 days in a row", StreakMessage(streak.Event{Kind: streak.EventContinued, Days: 4}))
	assert.Equal(t, "Reached a 7-day streak milestone", StreakMessage(streak.Event{Kind: streak.EventMilestone, Days: 7}))
	assert.Equal(t, "Streak broken after 9 days", StreakMessage(streak.Event{Kind: streak.EventBroken, Days: 9}))
}
