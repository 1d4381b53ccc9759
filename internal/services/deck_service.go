package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/memodeck/memodeck/internal/errors"
	"github.com/memodeck/memodeck/internal/models"
	"github.com/memodeck/memodeck/internal/repository"
)

// DeckInput carries the user-editable fields of a deck.
type DeckInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// DeckService handles deck-related business logic
type DeckService interface {
	ListDecks(ctx context.Context) ([]models.Deck, error)
	GetDeck(ctx context.Context, id string) (*models.Deck, error)
	CreateDeck(ctx context.Context, input DeckInput) (*models.Deck, error)
	UpdateDeck(ctx context.Context, id string, input DeckInput) (*models.Deck, error)
	DeleteDeck(ctx context.Context, id string) error
}

type deckService struct {
	deckRepo repository.DeckRepository
	gamify   GamifyService
	now      func() time.Time
}

// NewDeckService creates a new DeckService
func NewDeckService(deckRepo repository.DeckRepository, gamify GamifyService) DeckService {
	return &deckService{deckRepo: deckRepo, gamify: gamify, now: time.Now}
}

func (s *deckService) ListDecks(ctx context.Context) ([]models.Deck, error) {
	log := zerolog.Ctx(ctx)

	decks, err := s.deckRepo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list decks")
		return nil, errors.NewInternalError(err)
	}
	return decks, nil
}

func (s *deckService) GetDeck(ctx context.Context, id string) (*models.Deck, error) {
	deck, err := s.deckRepo.Get(ctx, id)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("deck_id", id).Msg("failed to get deck")
		return nil, errors.NewInternalError(err)
	}
	if deck == nil {
		return nil, errors.NewNotFoundError("deck", id)
	}
	return deck, nil
}

func (s *deckService) CreateDeck(ctx context.Context, input DeckInput) (*models.Deck, error) {
	log := zerolog.Ctx(ctx)

	if input.Title == "" {
		return nil, errors.NewInvalidInputError("title", "cannot be empty")
	}

	now := s.now()
	deck := models.Deck{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Tags:        input.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.deckRepo.Insert(ctx, deck); err != nil {
		log.Error().Err(err).Msg("failed to insert deck")
		return nil, errors.NewInternalError(err)
	}
	log.Info().Str("deck_id", deck.ID).Str("title", deck.Title).Msg("deck created")

	if count, err := s.deckRepo.Count(ctx); err == nil {
		if err := s.gamify.OnDeckCreated(ctx, count); err != nil {
			log.Warn().Err(err).Msg("failed to apply deck achievements")
		}
	}
	return &deck, nil
}

func (s *deckService) UpdateDeck(ctx context.Context, id string, input DeckInput) (*models.Deck, error) {
	log := zerolog.Ctx(ctx)

	if input.Title == "" {
		return nil, errors.NewInvalidInputError("title", "cannot be empty")
	}

	deck, err := s.GetDeck(ctx, id)
	if err != nil {
		return nil, err
	}

	deck.Title = input.Title
	deck.Description = input.Description
	deck.Tags = input.Tags
	deck.UpdatedAt = s.now()
	if err := s.deckRepo.Update(ctx, *deck); err != nil {
		log.Error().Err(err).Str("deck_id", id).Msg("failed to update deck")
		return nil, errors.NewInternalError(err)
	}
	return deck, nil
}

func (s *deckService) DeleteDeck(ctx context.Context, id string) error {
	log := zerolog.Ctx(ctx)

	if _, err := s.GetDeck(ctx, id); err != nil {
		return err
	}
	// Cards and their progress rows cascade at the storage layer.
	if err := s.deckRepo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("deck_id", id).Msg("failed to delete deck")
		return errors.NewInternalError(err)
	}
	log.Info().Str("deck_id", id).Msg("deck deleted")
	return nil
}
