package models

import "time"

// ReviewProgress is the spaced-repetition state of a single card.
// A card with no stored progress is treated as immediately due.
type ReviewProgress struct {
	CardID       string     `json:"card_id"`
	EaseFactor   float64    `json:"ease_factor"`
	Interval     int        `json:"interval"` // days until next review
	Repetitions  int        `json:"repetitions"`
	DueAt        time.Time  `json:"due_at"`
	LastReviewed *time.Time `json:"last_reviewed,omitempty"`
}

const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3
)

// NewProgress returns the initial scheduling state for a never-reviewed card.
func NewProgress(cardID string) ReviewProgress {
	return ReviewProgress{
		CardID:      cardID,
		EaseFactor:  DefaultEaseFactor,
		Interval:    0,
		Repetitions: 0,
	}
}
