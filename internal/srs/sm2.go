package srs

import (
	"math"
	"time"

	"github.com/memodeck/memodeck/internal/errors"
	"github.com/memodeck/memodeck/internal/models"
)

// Quality is the learner's self-assessed recall score for a review:
// 0 = complete blackout, 5 = perfect recall with no hesitation.
// Scores of 3 and above count as a successful review.
const (
	MinQuality     = 0
	MaxQuality     = 5
	PassingQuality = 3
)

// ValidQuality reports whether q is inside the accepted 0..5 range.
func ValidQuality(q int) bool {
	return q >= MinQuality && q <= MaxQuality
}

// NextReview applies the SM-2 update to a card's scheduling state.
// A nil progress means the card has never been reviewed and starts from
// the defaults (ease 2.5, interval 0, repetitions 0). Out-of-range quality
// values are rejected, never clamped.
func NextReview(progress *models.ReviewProgress, quality int, now time.Time) (models.ReviewProgress, error) {
	if !ValidQuality(quality) {
		return models.ReviewProgress{}, errors.NewInvalidInputError("quality", "must be an integer between 0 and 5")
	}

	var p models.ReviewProgress
	if progress != nil {
		p = *progress
	} else {
		p.EaseFactor = models.DefaultEaseFactor
	}

	if quality < PassingQuality {
		// Lapse: restart the repetition ladder.
		p.Repetitions = 0
		p.Interval = 1
	} else {
		p.Repetitions++
		switch p.Repetitions {
		case 1:
			p.Interval = 1
		case 2:
			p.Interval = 6
		default:
			// Grows from the interval and ease factor as they stood
			// before this review.
			p.Interval = int(math.Round(float64(p.Interval) * p.EaseFactor))
		}
	}

	p.EaseFactor += 0.1 - float64(MaxQuality-quality)*(0.08+float64(MaxQuality-quality)*0.02)
	if p.EaseFactor < models.MinEaseFactor {
		p.EaseFactor = models.MinEaseFactor
	}

	reviewed := now
	p.LastReviewed = &reviewed
	p.DueAt = now.Add(time.Duration(p.Interval) * 24 * time.Hour)
	return p, nil
}
