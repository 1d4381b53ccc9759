package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/memodeck/memodeck/internal/errors"
	"github.com/memodeck/memodeck/internal/models"
	"github.com/memodeck/memodeck/internal/repository"
	"github.com/memodeck/memodeck/internal/study"
)

// CardInput carries the user-editable fields of a card.
type CardInput struct {
	DeckID string   `json:"deck_id"`
	Front  string   `json:"front"`
	Back   string   `json:"back"`
	Tags   []string `json:"tags"`
}

// CardService handles card-related business logic
type CardService interface {
	ListCards(ctx context.Context, filter models.CardFilter) ([]models.Card, error)
	GetCard(ctx context.Context, id string) (*models.Card, error)
	CreateCard(ctx context.Context, input CardInput) (*models.Card, error)
	UpdateCard(ctx context.Context, id string, input CardInput) (*models.Card, error)
	DeleteCard(ctx context.Context, id string) error
	DueCards(ctx context.Context, deckID string) ([]models.Card, error)
	ResetProgress(ctx context.Context, cardID string) error
}

type cardService struct {
	cardRepo     repository.CardRepository
	deckRepo     repository.DeckRepository
	progressRepo repository.ProgressRepository
	gamify       GamifyService
	now          func() time.Time
}

// NewCardService creates a new CardService
func NewCardService(
	cardRepo repository.CardRepository,
	deckRepo repository.DeckRepository,
	progressRepo repository.ProgressRepository,
	gamify GamifyService,
) CardService {
	return &cardService{
		cardRepo:     cardRepo,
		deckRepo:     deckRepo,
		progressRepo: progressRepo,
		gamify:       gamify,
		now:          time.Now,
	}
}

func (s *cardService) ListCards(ctx context.Context, filter models.CardFilter) ([]models.Card, error) {
	cards, err := s.cardRepo.List(ctx, filter)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to list cards")
		return nil, errors.NewInternalError(err)
	}
	return cards, nil
}

func (s *cardService) GetCard(ctx context.Context, id string) (*models.Card, error) {
	card, err := s.cardRepo.Get(ctx, id)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("card_id", id).Msg("failed to get card")
		return nil, errors.NewInternalError(err)
	}
	if card == nil {
		return nil, errors.NewNotFoundError("card", id)
	}
	return card, nil
}

func (s *cardService) CreateCard(ctx context.Context, input CardInput) (*models.Card, error) {
	log := zerolog.Ctx(ctx)

	if input.Front == "" {
		return nil, errors.NewInvalidInputError("front", "cannot be empty")
	}
	if input.Back == "" {
		return nil, errors.NewInvalidInputError("back", "cannot be empty")
	}

	deck, err := s.deckRepo.Get(ctx, input.DeckID)
	if err != nil {
		log.Error().Err(err).Str("deck_id", input.DeckID).Msg("failed to look up deck")
		return nil, errors.NewInternalError(err)
	}
	if deck == nil {
		return nil, errors.NewNotFoundError("deck", input.DeckID)
	}

	now := s.now()
	card := models.Card{
		ID:        uuid.NewString(),
		DeckID:    input.DeckID,
		Front:     input.Front,
		Back:      input.Back,
		Tags:      input.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.cardRepo.Insert(ctx, card); err != nil {
		log.Error().Err(err).Msg("failed to insert card")
		return nil, errors.NewInternalError(err)
	}
	log.Info().Str("card_id", card.ID).Str("deck_id", card.DeckID).Msg("card created")

	if count, err := s.cardRepo.Count(ctx); err == nil {
		if err := s.gamify.OnCardCreated(ctx, count); err != nil {
			log.Warn().Err(err).Msg("failed to apply card achievements")
		}
	}
	return &card, nil
}

func (s *cardService) UpdateCard(ctx context.Context, id string, input CardInput) (*models.Card, error) {
	log := zerolog.Ctx(ctx)

	if input.Front == "" {
		return nil, errors.NewInvalidInputError("front", "cannot be empty")
	}
	if input.Back == "" {
		return nil, errors.NewInvalidInputError("back", "cannot be empty")
	}

	card, err := s.GetCard(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.DeckID != "" && input.DeckID != card.DeckID {
		deck, err := s.deckRepo.Get(ctx, input.DeckID)
		if err != nil {
			return nil, errors.NewInternalError(err)
		}
		if deck == nil {
			return nil, errors.NewNotFoundError("deck", input.DeckID)
		}
		card.DeckID = input.DeckID
	}

	card.Front = input.Front
	card.Back = input.Back
	card.Tags = input.Tags
	card.UpdatedAt = s.now()
	if err := s.cardRepo.Update(ctx, *card); err != nil {
		log.Error().Err(err).Str("card_id", id).Msg("failed to update card")
		return nil, errors.NewInternalError(err)
	}
	return card, nil
}

func (s *cardService) DeleteCard(ctx context.Context, id string) error {
	log := zerolog.Ctx(ctx)

	if _, err := s.GetCard(ctx, id); err != nil {
		return err
	}
	if err := s.cardRepo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("card_id", id).Msg("failed to delete card")
		return errors.NewInternalError(err)
	}
	log.Info().Str("card_id", id).Msg("card deleted")
	return nil
}

// DueCards returns the cards currently eligible for review, optionally
// restricted to one deck.
func (s *cardService) DueCards(ctx context.Context, deckID string) ([]models.Card, error) {
	log := zerolog.Ctx(ctx)

	cards, err := s.cardRepo.List(ctx, models.CardFilter{DeckID: deckID})
	if err != nil {
		log.Error().Err(err).Msg("failed to list cards")
		return nil, errors.NewInternalError(err)
	}

	progress, err := s.progressRepo.All(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load progress")
		return nil, errors.NewInternalError(err)
	}

	due := study.Due(cards, progress, s.now())
	log.Debug().Int("due", len(due)).Int("pool", len(cards)).Msg("computed due cards")
	return due, nil
}

// ResetProgress drops the scheduling state of a card, returning it to the
// immediately-due new-card default.
func (s *cardService) ResetProgress(ctx context.Context, cardID string) error {
	if _, err := s.GetCard(ctx, cardID); err != nil {
		return err
	}
	if err := s.progressRepo.Delete(ctx, cardID); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("card_id", cardID).Msg("failed to reset progress")
		return errors.NewInternalError(err)
	}
	return nil
}
