package study

import (
	"context"
	"math/rand"
	"time"

	"github.com/memodeck/memodeck/internal/errors"
	"github.com/memodeck/memodeck/internal/models"
	"github.com/memodeck/memodeck/internal/srs"
)

// CardSource supplies the pool of cards eligible for study.
type CardSource interface {
	ListAll(ctx context.Context) ([]models.Card, error)
	ListByDeck(ctx context.Context, deckID string) ([]models.Card, error)
}

// ProgressStore is the narrow adapter the session needs to read and write
// per-card scheduling state.
type ProgressStore interface {
	Get(ctx context.Context, cardID string) (*models.ReviewProgress, error)
	Set(ctx context.Context, cardID string, progress models.ReviewProgress) error
}

// StatsRecorder receives the per-review aggregate update. Date is the UTC
// calendar date of the review in YYYY-MM-DD form.
type StatsRecorder interface {
	RecordReview(ctx context.Context, date string, correct bool) error
}

// State is the lifecycle stage of a study session.
type State int

const (
	Empty State = iota
	InProgress
	Completed
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case InProgress:
		return "in_progress"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// Session walks the learner through the due cards of a deck one at a time,
// applying the SM-2 update on each answer. The card order is a fixed random
// permutation taken at Start; it is never re-shuffled mid-session.
//
// Session is not safe for concurrent use; callers serialize access.
type Session struct {
	cards CardSource
	store ProgressStore
	stats StatsRecorder
	rng   *rand.Rand
	now   func() time.Time

	state    State
	deckID   string
	queue    []string
	index    int
	revealed bool
	byID     map[string]models.Card
}

// Option configures a Session.
type Option func(*Session)

// WithRand sets the random source used to shuffle the session queue.
// Tests inject a seeded source for deterministic ordering.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// NewSession creates an empty session over the given collaborators.
func NewSession(cards CardSource, store ProgressStore, stats StatsRecorder, opts ...Option) *Session {
	s := &Session{
		cards: cards,
		store: store,
		stats: stats,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		now:   time.Now,
		state: Empty,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start computes the due cards (restricted to deckID when non-empty),
// shuffles them and begins a new session, discarding any prior one.
// Starting with zero due cards is not an error: the session transitions
// straight to Completed and the returned count is 0.
func (s *Session) Start(ctx context.Context, deckID string) (int, error) {
	var (
		pool []models.Card
		err  error
	)
	if deckID != "" {
		pool, err = s.cards.ListByDeck(ctx, deckID)
	} else {
		pool, err = s.cards.ListAll(ctx)
	}
	if err != nil {
		return 0, errors.NewPersistenceError("list cards", err)
	}

	progress := make(map[string]models.ReviewProgress, len(pool))
	for _, card := range pool {
		p, err := s.store.Get(ctx, card.ID)
		if err != nil {
			return 0, errors.NewPersistenceError("get progress", err)
		}
		if p != nil {
			progress[card.ID] = *p
		}
	}

	due := Due(pool, progress, s.now())

	queue := make([]string, len(due))
	byID := make(map[string]models.Card, len(due))
	for i, card := range due {
		queue[i] = card.ID
		byID[card.ID] = card
	}
	s.rng.Shuffle(len(queue), func(i, j int) {
		queue[i], queue[j] = queue[j], queue[i]
	})

	s.deckID = deckID
	s.queue = queue
	s.byID = byID
	s.index = 0
	s.revealed = false
	if len(queue) == 0 {
		s.state = Completed
	} else {
		s.state = InProgress
	}
	return len(queue), nil
}

// CurrentCard returns the card at the current position, or nil when the
// session is empty or has been exhausted.
func (s *Session) CurrentCard() *models.Card {
	if s.state != InProgress || s.index >= len(s.queue) {
		return nil
	}
	card := s.byID[s.queue[s.index]]
	return &card
}

// Reveal flips the active card to show its answer.
func (s *Session) Reveal() error {
	if s.state != InProgress {
		return errors.NewInvalidStateError("no card to reveal: session is " + s.state.String())
	}
	s.revealed = true
	return nil
}

// Revealed reports whether the active card's answer is showing.
func (s *Session) Revealed() bool {
	return s.revealed
}

// Answer records the learner's quality score for the current card, writes
// the updated scheduling state through the progress store, updates the
// study stats, and advances to the next card. It returns true when this
// answer completed the session.
//
// The index does not advance if the progress or stats write fails, so the
// same call can be retried safely.
func (s *Session) Answer(ctx context.Context, quality int) (bool, error) {
	if s.state != InProgress {
		return false, errors.NewInvalidStateError("no active session to answer in")
	}
	if !srs.ValidQuality(quality) {
		return false, errors.NewInvalidInputError("quality", "must be an integer between 0 and 5")
	}

	cardID := s.queue[s.index]
	if _, ok := s.byID[cardID]; !ok {
		return false, errors.NewInvalidStateError("session references unknown card " + cardID)
	}

	prev, err := s.store.Get(ctx, cardID)
	if err != nil {
		return false, errors.NewPersistenceError("get progress", err)
	}
	if prev == nil {
		initial := models.NewProgress(cardID)
		prev = &initial
	}

	now := s.now()
	next, err := srs.NextReview(prev, quality, now)
	if err != nil {
		return false, err
	}
	next.CardID = cardID

	if err := s.store.Set(ctx, cardID, next); err != nil {
		return false, errors.NewPersistenceError("save progress", err)
	}

	correct := quality >= srs.PassingQuality
	if err := s.stats.RecordReview(ctx, now.UTC().Format("2006-01-02"), correct); err != nil {
		return false, errors.NewPersistenceError("record review", err)
	}

	s.index++
	s.revealed = false
	if s.index >= len(s.queue) {
		s.state = Completed
	}
	return s.state == Completed, nil
}

// Reset discards the session without persisting anything beyond what
// Answer already committed per card.
func (s *Session) Reset() {
	s.state = Empty
	s.deckID = ""
	s.queue = nil
	s.byID = nil
	s.index = 0
	s.revealed = false
}

// State returns the session's lifecycle stage.
func (s *Session) State() State {
	return s.state
}

// DeckID returns the deck the session was started for, empty for all decks.
func (s *Session) DeckID() string {
	return s.deckID
}

// Remaining returns how many cards are left, including the current one.
func (s *Session) Remaining() int {
	if s.index >= len(s.queue) {
		return 0
	}
	return len(s.queue) - s.index
}

// Size returns the number of cards queued at Start.
func (s *Session) Size() int {
	return len(s.queue)
}
