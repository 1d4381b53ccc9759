package srs

import (
	"math"

	"github.com/memodeck/memodeck/internal/models"
)

// ReviewEfficiency returns the percentage of reviews answered correctly.
func ReviewEfficiency(stats models.StudyStats) int {
	if stats.TotalReviews == 0 {
		return 0
	}
	return int(math.Round(float64(stats.CorrectReviews) / float64(stats.TotalReviews) * 100))
}

// AnalyzeProgress breaks a card pool down by learning stage. Cards absent
// from the progress map count as new.
func AnalyzeProgress(totalCards int, progress map[string]models.ReviewProgress) models.ProgressInsights {
	if totalCards == 0 {
		return models.ProgressInsights{}
	}

	var insights models.ProgressInsights
	for _, p := range progress {
		switch {
		case p.Repetitions >= 3 && p.EaseFactor > 2.0:
			insights.Mastered++
		case p.Repetitions > 0:
			insights.Learning++
		default:
			insights.New++
		}
	}
	insights.New += totalCards - len(progress)
	insights.Retention = int(math.Round(float64(insights.Mastered) / float64(totalCards) * 100))
	return insights
}
