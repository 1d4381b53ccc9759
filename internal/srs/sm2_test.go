package srs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memodeck/memodeck/internal/errors"
	"github.com/memodeck/memodeck/internal/models"
)

var reviewTime = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func TestNextReviewNewCard(t *testing.T) {
	tests := []struct {
		name        string
		quality     int
		wantReps    int
		wantInt     int
		wantEase    float64
	}{
		{name: "perfect recall", quality: 5, wantReps: 1, wantInt: 1, wantEase: 2.6},
		{name: "good recall", quality: 4, wantReps: 1, wantInt: 1, wantEase: 2.5},
		{name: "hard recall", quality: 3, wantReps: 1, wantInt: 1, wantEase: 2.36},
		{name: "failed recall", quality: 2, wantReps: 0, wantInt: 1, wantEase: 2.18},
		{name: "blackout", quality: 0, wantReps: 0, wantInt: 1, wantEase: 1.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextReview(nil, tt.quality, reviewTime)
			require.NoError(t, err)

			assert.Equal(t, tt.wantReps, got.Repetitions)
			assert.Equal(t, tt.wantInt, got.Interval)
			assert.InDelta(t, tt.wantEase, got.EaseFactor, 0.0001)
			assert.Equal(t, reviewTime.Add(time.Duration(tt.wantInt)*24*time.Hour), got.DueAt)
			require.NotNil(t, got.LastReviewed)
			assert.Equal(t, reviewTime, *got.LastReviewed)
		})
	}
}

func TestNextReviewStaircase(t *testing.T) {
	// First successful review: interval 1
	p, err := NextReview(nil, 4, reviewTime)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Repetitions)
	assert.Equal(t, 1, p.Interval)

	// Second: interval 6
	p, err = NextReview(&p, 4, reviewTime)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Repetitions)
	assert.Equal(t, 6, p.Interval)

	// Third and beyond: previous interval times the ease factor as it
	// stood before the review, rounded.
	ease := p.EaseFactor
	p, err = NextReview(&p, 4, reviewTime)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Repetitions)
	assert.Equal(t, int(6*ease+0.5), p.Interval)
}

func TestNextReviewLapseResetsLadder(t *testing.T) {
	p := models.ReviewProgress{
		EaseFactor:  2.5,
		Interval:    15,
		Repetitions: 4,
	}

	got, err := NextReview(&p, 2, reviewTime)
	require.NoError(t, err)

	assert.Equal(t, 0, got.Repetitions)
	assert.Equal(t, 1, got.Interval)
	// Ease still drops on a lapse.
	assert.InDelta(t, 2.18, got.EaseFactor, 0.0001)

	// Relearning climbs the staircase from the bottom again.
	got, err = NextReview(&got, 4, reviewTime)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Repetitions)
	assert.Equal(t, 1, got.Interval)
}

func TestNextReviewEaseFloor(t *testing.T) {
	p := models.ReviewProgress{EaseFactor: 1.35, Interval: 1, Repetitions: 1}

	got, err := NextReview(&p, 0, reviewTime)
	require.NoError(t, err)
	assert.Equal(t, models.MinEaseFactor, got.EaseFactor)

	// Repeated failures never push ease below the floor.
	got, err = NextReview(&got, 0, reviewTime)
	require.NoError(t, err)
	assert.Equal(t, models.MinEaseFactor, got.EaseFactor)
}

func TestNextReviewRejectsInvalidQuality(t *testing.T) {
	for _, q := range []int{-1, 6, 42} {
		_, err := NextReview(nil, q, reviewTime)
		require.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidInput))
	}
}

func TestNextReviewDoesNotMutateInput(t *testing.T) {
	p := models.ReviewProgress{EaseFactor: 2.5, Interval: 6, Repetitions: 2}
	before := p

	_, err := NextReview(&p, 5, reviewTime)
	require.NoError(t, err)
	assert.Equal(t, before, p)
}

func TestNextReviewSequence(t *testing.T) {
	// A card that lapses once and then recovers.
	var p *models.ReviewProgress
	for _, q := range []int{2, 4, 4, 4} {
		next, err := NextReview(p, q, reviewTime)
		require.NoError(t, err)
		p = &next
	}

	assert.Equal(t, 3, p.Repetitions)
	assert.Equal(t, 13, p.Interval) // round(6 * 2.18)
	assert.InDelta(t, 2.18, p.EaseFactor, 0.0001)
}

func TestValidQuality(t *testing.T) {
	assert.True(t, ValidQuality(0))
	assert.True(t, ValidQuality(3))
	assert.True(t, ValidQuality(5))
	assert.False(t, ValidQuality(-1))
	assert.False(t, ValidQuality(6))
}
