package study

import (
	"time"

	"github.com/memodeck/memodeck/internal/models"
)

// Due filters cards down to those eligible for review at the given time.
// A card qualifies when it has no progress record, or when its due date
// has been reached (a card due exactly at now is due).
func Due(cards []models.Card, progress map[string]models.ReviewProgress, now time.Time) []models.Card {
	due := make([]models.Card, 0, len(cards))
	for _, card := range cards {
		p, ok := progress[card.ID]
		if !ok || !p.DueAt.After(now) {
			due = append(due, card)
		}
	}
	return due
}
