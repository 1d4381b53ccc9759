package models

// StudyStats aggregates review counts across all sessions.
type StudyStats struct {
	TotalReviews   int `json:"total_reviews"`
	CorrectReviews int `json:"correct_reviews"`
	DailyGoal      int `json:"daily_goal"`
}

// DailyStat is the per-calendar-day history entry. Date is a UTC
// calendar date in YYYY-MM-DD form; at most one entry exists per date.
type DailyStat struct {
	Date          string `json:"date"`
	CardsReviewed int    `json:"cards_reviewed"`
	CorrectCount  int    `json:"correct_count"`
}

// StreakState tracks consecutive calendar days with at least one review.
// LastStudyDate is a UTC calendar date in YYYY-MM-DD form, empty when the
// user has never studied.
type StreakState struct {
	Current       int    `json:"current"`
	LastStudyDate string `json:"last_study_date"`
	Highest       int    `json:"highest"`
}

// ProgressInsights is a breakdown of the card pool by learning stage.
type ProgressInsights struct {
	Retention int `json:"retention"` // percentage of cards mastered
	Mastered  int `json:"mastered"`
	Learning  int `json:"learning"`
	New       int `json:"new"`
}

// StatsSnapshot is the read-only view served to clients.
type StatsSnapshot struct {
	StudyStats
	Efficiency    int              `json:"efficiency"` // correct/total percentage
	TodayLearned  int              `json:"today_learned"`
	TodayProgress int              `json:"today_progress"` // percentage of daily goal
	History       []DailyStat      `json:"history"`
	Streak        StreakState      `json:"streak"`
	Insights      ProgressInsights `json:"insights"`
}
