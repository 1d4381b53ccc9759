package models

import "time"

// Achievement is a threshold-based unlock presented to the client.
type Achievement struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Target      int        `json:"target"`
	XP          int        `json:"xp"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`
}

// ActivityEntry is one row of the gamification activity log.
type ActivityEntry struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"` // streak, streak_broken, achievement, level_up
	Message   string    `json:"message"`
	Points    int       `json:"points"`
	CreatedAt time.Time `json:"created_at"`
}

// GamifySnapshot is the read-only gamification view served to clients.
type GamifySnapshot struct {
	Experience    int             `json:"experience"`
	Level         int             `json:"level"`
	Title         string          `json:"title"`
	NextLevelXP   int             `json:"next_level_xp"`
	LevelProgress int             `json:"level_progress"` // percentage within current level
	Achievements  []Achievement   `json:"achievements"`
	Activity      []ActivityEntry `json:"activity"`
}
