package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/memodeck/memodeck/internal/errors"
	"github.com/memodeck/memodeck/internal/models"
	"github.com/memodeck/memodeck/internal/services"
	"github.com/memodeck/memodeck/internal/testutil/mocks"
)

type cardServiceMocks struct {
	cards    *mocks.MockCardRepository
	decks    *mocks.MockDeckRepository
	progress *mocks.MockProgressRepository
	gamify   *mocks.MockGamifyService
}

func newCardService() (services.CardService, cardServiceMocks) {
	m := cardServiceMocks{
		cards:    new(mocks.MockCardRepository),
		decks:    new(mocks.MockDeckRepository),
		progress: new(mocks.MockProgressRepository),
		gamify:   new(mocks.MockGamifyService),
	}
	return services.NewCardService(m.cards, m.decks, m.progress, m.gamify), m
}

func TestCreateCard(t *testing.T) {
	svc, m := newCardService()

	m.decks.On("Get", mock.Anything, "deck-1").Return(&models.Deck{ID: "deck-1"}, nil)
	m.cards.On("Insert", mock.Anything, mock.MatchedBy(func(c models.Card) bool {
		return c.ID != "" && c.DeckID == "deck-1" && c.Front == "hola"
	})).Return(nil)
	m.cards.On("Count", mock.Anything).Return(1, nil)
	m.gamify.On("OnCardCreated", mock.Anything, 1).Return(nil)

	card, err := svc.CreateCard(context.Background(), services.CardInput{
		DeckID: "deck-1", Front: "hola", Back: "hello",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, card.ID)
	m.cards.AssertExpectations(t)
	m.gamify.AssertExpectations(t)
}

func TestCreateCardValidation(t *testing.T) {
	svc, _ := newCardService()
	ctx := context.Background()

	_, err := svc.CreateCard(ctx, services.CardInput{DeckID: "deck-1", Back: "hello"})
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidInput))

	_, err = svc.CreateCard(ctx, services.CardInput{DeckID: "deck-1", Front: "hola"})
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidInput))
}

func TestCreateCardUnknownDeck(t *testing.T) {
	svc, m := newCardService()

	m.decks.On("Get", mock.Anything, "nope").Return(nil, nil)

	_, err := svc.CreateCard(context.Background(), services.CardInput{
		DeckID: "nope", Front: "hola", Back: "hello",
	})
	assert.True(t, errors.HasCode(err, errors.ErrCodeNotFound))
	m.cards.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestUpdateCardMoveToOtherDeck(t *testing.T) {
	svc, m := newCardService()

	m.cards.On("Get", mock.Anything, "c1").Return(&models.Card{ID: "c1", DeckID: "deck-1"}, nil)
	m.decks.On("Get", mock.Anything, "deck-2").Return(&models.Deck{ID: "deck-2"}, nil)
	m.cards.On("Update", mock.Anything, mock.MatchedBy(func(c models.Card) bool {
		return c.DeckID == "deck-2" && c.Front == "nueva"
	})).Return(nil)

	card, err := svc.UpdateCard(context.Background(), "c1", services.CardInput{
		DeckID: "deck-2", Front: "nueva", Back: "new",
	})
	require.NoError(t, err)
	assert.Equal(t, "deck-2", card.DeckID)
	m.cards.AssertExpectations(t)
}

func TestDueCards(t *testing.T) {
	svc, m := newCardService()
	now := time.Now()

	pool := []models.Card{{ID: "due"}, {ID: "future"}, {ID: "new"}}
	m.cards.On("List", mock.Anything, models.CardFilter{DeckID: "deck-1"}).Return(pool, nil)
	m.progress.On("All", mock.Anything).Return(map[string]models.ReviewProgress{
		"due":    {CardID: "due", DueAt: now.Add(-time.Hour)},
		"future": {CardID: "future", DueAt: now.Add(48 * time.Hour)},
	}, nil)

	due, err := svc.DueCards(context.Background(), "deck-1")
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, "due", due[0].ID)
	assert.Equal(t, "new", due[1].ID)
}

func TestResetProgress(t *testing.T) {
	svc, m := newCardService()

	m.cards.On("Get", mock.Anything, "c1").Return(&models.Card{ID: "c1"}, nil)
	m.progress.On("Delete", mock.Anything, "c1").Return(nil)

	require.NoError(t, svc.ResetProgress(context.Background(), "c1"))
	m.progress.AssertExpectations(t)
}

func TestResetProgressUnknownCard(t *testing.T) {
	svc, m := newCardService()

	m.cards.On("Get", mock.Anything, "nope").Return(nil, nil)

	err := svc.ResetProgress(context.Background(), "nope")
	assert.True(t, errors.HasCode(err, errors.ErrCodeNotFound))
	m.progress.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
