package streak

import (
	"time"

	"github.com/memodeck/memodeck/internal/models"
)

// DateLayout is the calendar-date form used for streak bookkeeping.
// All dates are UTC; mixing local and UTC day boundaries corrupts streaks.
const DateLayout = "2006-01-02"

// EventKind classifies what happened to the streak on a given day.
type EventKind string

const (
	EventStarted   EventKind = "started"   // first ever study day
	EventContinued EventKind = "continued" // consecutive day
	EventMilestone EventKind = "milestone" // hit a configured threshold
	EventBroken    EventKind = "broken"    // gap of two or more days
)

// Event is emitted by Record for consumers such as the gamification
// ledger. Days carries the streak length, except for EventBroken where it
// is the length of the streak that just ended.
type Event struct {
	Kind EventKind
	Days int
}

// Tracker applies day-boundary rules to a streak. Milestone thresholds are
// configuration, not behavior baked into the tracker.
type Tracker struct {
	milestones []int
}

// DefaultMilestones are the streak lengths that emit a milestone event.
var DefaultMilestones = []int{3, 7, 30}

// NewTracker creates a Tracker emitting milestone events at the given
// thresholds, defaulting to 3/7/30 days.
func NewTracker(milestones ...int) *Tracker {
	if len(milestones) == 0 {
		milestones = DefaultMilestones
	}
	return &Tracker{milestones: milestones}
}

// Record registers study activity for the calendar day of `today` (UTC)
// and returns the updated state plus any events. Calling it again on the
// same day is a no-op, so callers may invoke it once per review.
func (t *Tracker) Record(state models.StreakState, today time.Time) (models.StreakState, []Event) {
	day := today.UTC().Format(DateLayout)

	if state.LastStudyDate == day {
		return state, nil
	}

	var events []Event
	switch {
	case state.LastStudyDate == "":
		state.Current = 1
		state.Highest = 1
		events = append(events, Event{Kind: EventStarted, Days: 1})
	case state.LastStudyDate == today.UTC().AddDate(0, 0, -1).Format(DateLayout):
		state.Current++
		if state.Current > state.Highest {
			state.Highest = state.Current
		}
		events = append(events, Event{Kind: EventContinued, Days: state.Current})
		for _, m := range t.milestones {
			if state.Current == m {
				events = append(events, Event{Kind: EventMilestone, Days: m})
			}
		}
	default:
		// Gap of two or more days: the streak is broken and today counts
		// as day one of a new one.
		events = append(events, Event{Kind: EventBroken, Days: state.Current})
		state.Current = 1
	}

	state.LastStudyDate = day
	return state, events
}
