package gamify

import (
	"fmt"
	"math"

	"github.com/memodeck/memodeck/internal/streak"
)

// Metric identifies the counter an achievement threshold is checked against.
type Metric string

const (
	MetricStreakDays   Metric = "streak_days"
	MetricTotalReviews Metric = "total_reviews"
	MetricCardsCreated Metric = "cards_created"
	MetricDecksCreated Metric = "decks_created"
)

// AchievementDef is a threshold-based unlock rule.
type AchievementDef struct {
	ID          string
	Name        string
	Description string
	Metric      Metric
	Target      int
	XP          int
}

// DefaultAchievements are the built-in unlock rules.
func DefaultAchievements() []AchievementDef {
	return []AchievementDef{
		{ID: "daily_streak_3", Name: "Steady Progress", Description: "Study 3 days in a row", Metric: MetricStreakDays, Target: 3, XP: 50},
		{ID: "daily_streak_7", Name: "Full Week", Description: "Study 7 days in a row", Metric: MetricStreakDays, Target: 7, XP: 100},
		{ID: "daily_streak_30", Name: "Monthly Scholar", Description: "Study 30 days in a row", Metric: MetricStreakDays, Target: 30, XP: 500},
		{ID: "first_review", Name: "First Review", Description: "Complete your first card review", Metric: MetricTotalReviews, Target: 1, XP: 10},
		{ID: "review_10", Name: "Getting Started", Description: "Review 10 cards", Metric: MetricTotalReviews, Target: 10, XP: 30},
		{ID: "review_100", Name: "Review Expert", Description: "Review 100 cards", Metric: MetricTotalReviews, Target: 100, XP: 150},
		{ID: "review_1000", Name: "Review Master", Description: "Review 1000 cards", Metric: MetricTotalReviews, Target: 1000, XP: 300},
		{ID: "first_card", Name: "Memory Seed", Description: "Create your first card", Metric: MetricCardsCreated, Target: 1, XP: 10},
		{ID: "ten_cards", Name: "Card Novice", Description: "Create 10 cards", Metric: MetricCardsCreated, Target: 10, XP: 50},
		{ID: "fifty_cards", Name: "Card Collector", Description: "Create 50 cards", Metric: MetricCardsCreated, Target: 50, XP: 200},
		{ID: "first_deck", Name: "Organizer", Description: "Create your first deck", Metric: MetricDecksCreated, Target: 1, XP: 20},
	}
}

type title struct {
	level int
	name  string
}

var titles = []title{
	{1, "Memory Novice"},
	{5, "Memory Apprentice"},
	{10, "Memory Adept"},
	{15, "Memory Expert"},
	{20, "Memory Master"},
	{30, "Memory Grandmaster"},
	{40, "Memory Legend"},
	{50, "Total Recall"},
}

// Level derives the level from accumulated experience.
func Level(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return int(math.Floor(1 + math.Sqrt(float64(xp)/100)))
}

// NextLevelXP returns the experience required to reach the next level.
func NextLevelXP(level int) int {
	next := level + 1
	return next * next * 100
}

// LevelProgress returns the percentage of the way from the current level
// to the next, given total experience.
func LevelProgress(xp int) int {
	level := Level(xp)
	floor := level * level * 100
	ceil := NextLevelXP(level)
	if ceil == floor {
		return 0
	}
	pct := int(math.Round(float64(xp-floor) / float64(ceil-floor) * 100))
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return pct
}

// Title returns the highest title earned at the given level.
func Title(level int) string {
	name := "Beginner"
	for _, t := range titles {
		if level >= t.level {
			name = t.name
		}
	}
	return name
}

// Ledger evaluates unlock rules against metric values. It is pure: the
// caller owns the unlocked set and experience total and persists them.
type Ledger struct {
	defs []AchievementDef
}

// NewLedger creates a Ledger over the given rules, defaulting to the
// built-in set.
func NewLedger(defs ...AchievementDef) *Ledger {
	if len(defs) == 0 {
		defs = DefaultAchievements()
	}
	return &Ledger{defs: defs}
}

// Defs returns the ledger's unlock rules.
func (l *Ledger) Defs() []AchievementDef {
	return l.defs
}

// Evaluate returns the rules for metric newly satisfied by value, skipping
// ones already unlocked.
func (l *Ledger) Evaluate(metric Metric, value int, unlocked map[string]bool) []AchievementDef {
	var hits []AchievementDef
	for _, def := range l.defs {
		if def.Metric != metric || unlocked[def.ID] {
			continue
		}
		if value >= def.Target {
			hits = append(hits, def)
		}
	}
	return hits
}

// StreakMessage renders a human-readable activity message for a streak event.
func StreakMessage(ev streak.Event) string {
	switch ev.Kind {
	case streak.EventStarted:
		return "Started a study streak"
	case streak.EventContinued:
		return fmt.Sprintf("Studied %d days in a row", ev.Days)
	case streak.EventMilestone:
		return fmt.Sprintf("Reached a %d-day streak milestone", ev.Days)
	case streak.EventBroken:
		return fmt.Sprintf("Streak broken after %d days", ev.Days)
	default:
		return string(ev.Kind)
	}
}
