package services

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/memodeck/memodeck/internal/models"
	"github.com/memodeck/memodeck/internal/repository"
	"github.com/memodeck/memodeck/internal/streak"
	"github.com/memodeck/memodeck/internal/study"
)

// SessionStatus is the client-facing view of the active study session.
type SessionStatus struct {
	State     string       `json:"state"`
	DeckID    string       `json:"deck_id,omitempty"`
	Size      int          `json:"size"`
	Remaining int          `json:"remaining"`
	Revealed  bool         `json:"revealed"`
	Card      *models.Card `json:"card,omitempty"`
}

// StudyService drives the single active study session and its side
// effects: progress writes, stats, streak updates and gamification.
type StudyService interface {
	StartSession(ctx context.Context, deckID string) (int, error)
	Status(ctx context.Context) SessionStatus
	Reveal(ctx context.Context) error
	Answer(ctx context.Context, quality int) (bool, error)
	ResetSession(ctx context.Context)
}

type studyService struct {
	mu      sync.Mutex
	session *study.Session
	stats   repository.StatsRepository
	gamify  GamifyService
	tracker *streak.Tracker
	rng     *rand.Rand
	now     func() time.Time
}

// StudyOption configures a StudyService.
type StudyOption func(*studyService)

// WithStudyRand sets the random source used to shuffle session queues.
func WithStudyRand(rng *rand.Rand) StudyOption {
	return func(s *studyService) {
		s.rng = rng
	}
}

// WithStudyClock sets the time source.
func WithStudyClock(now func() time.Time) StudyOption {
	return func(s *studyService) {
		s.now = now
	}
}

// NewStudyService creates a new StudyService. The session is a singleton:
// starting a new session discards the previous one.
func NewStudyService(
	cards repository.CardRepository,
	progress repository.ProgressRepository,
	stats repository.StatsRepository,
	gamify GamifyService,
	opts ...StudyOption,
) StudyService {
	s := &studyService{
		stats:   stats,
		gamify:  gamify,
		tracker: streak.NewTracker(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	sessionOpts := []study.Option{study.WithClock(s.now)}
	if s.rng != nil {
		sessionOpts = append(sessionOpts, study.WithRand(s.rng))
	}
	s.session = study.NewSession(&cardSource{cards: cards}, progress, stats, sessionOpts...)
	return s
}

// cardSource adapts the card repository to the session's CardSource.
type cardSource struct {
	cards repository.CardRepository
}

func (c *cardSource) ListAll(ctx context.Context) ([]models.Card, error) {
	return c.cards.List(ctx, models.CardFilter{})
}

func (c *cardSource) ListByDeck(ctx context.Context, deckID string) ([]models.Card, error) {
	return c.cards.List(ctx, models.CardFilter{DeckID: deckID})
}

func (s *studyService) StartSession(ctx context.Context, deckID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := zerolog.Ctx(ctx)
	count, err := s.session.Start(ctx, deckID)
	if err != nil {
		log.Error().Err(err).Str("deck_id", deckID).Msg("failed to start study session")
		return 0, err
	}
	log.Info().Int("cards", count).Str("deck_id", deckID).Msg("study session started")
	return count, nil
}

func (s *studyService) Status(ctx context.Context) SessionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	return SessionStatus{
		State:     s.session.State().String(),
		DeckID:    s.session.DeckID(),
		Size:      s.session.Size(),
		Remaining: s.session.Remaining(),
		Revealed:  s.session.Revealed(),
		Card:      s.session.CurrentCard(),
	}
}

func (s *studyService) Reveal(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Reveal()
}

func (s *studyService) Answer(ctx context.Context, quality int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := zerolog.Ctx(ctx)
	completed, err := s.session.Answer(ctx, quality)
	if err != nil {
		return false, err
	}
	log.Debug().Int("quality", quality).Bool("completed", completed).Msg("card answered")

	// Ledger updates are best-effort: the review itself is already
	// committed, so a gamification hiccup must not fail the answer.
	s.recordActivity(ctx)

	return completed, nil
}

// recordActivity advances the streak for today's calendar day (idempotent
// within a day) and feeds the gamification ledger.
func (s *studyService) recordActivity(ctx context.Context) {
	log := zerolog.Ctx(ctx)

	state, err := s.stats.GetStreak(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load streak state")
		return
	}

	updated, events := s.tracker.Record(*state, s.now())
	if len(events) > 0 || updated != *state {
		if err := s.stats.SaveStreak(ctx, updated); err != nil {
			log.Warn().Err(err).Msg("failed to save streak state")
			return
		}
		if err := s.gamify.OnStreakEvents(ctx, events); err != nil {
			log.Warn().Err(err).Msg("failed to apply streak events")
		}
	}

	stats, err := s.stats.GetStats(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load study stats")
		return
	}
	if err := s.gamify.OnReviewProgress(ctx, stats.TotalReviews); err != nil {
		log.Warn().Err(err).Msg("failed to apply review achievements")
	}
}

func (s *studyService) ResetSession(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Reset()
	zerolog.Ctx(ctx).Debug().Msg("study session reset")
}
