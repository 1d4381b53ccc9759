package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/memodeck/memodeck/internal/models"
	"github.com/memodeck/memodeck/internal/repository"
	"github.com/memodeck/memodeck/internal/repository/sqlite"
	"github.com/memodeck/memodeck/internal/testutil"
)

type DeckRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.DeckRepository
}

func (s *DeckRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewDeckRepository(s.db)
}

func (s *DeckRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *DeckRepositorySuite) insertDeck(id, title string) models.Deck {
	now := time.Now().UTC().Truncate(time.Second)
	deck := models.Deck{
		ID:          id,
		Title:       title,
		Description: "a deck",
		Tags:        []string{"language", "spanish"},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.Require().NoError(s.repo.Insert(context.Background(), deck))
	return deck
}

func (s *DeckRepositorySuite) TestInsertAndGet() {
	ctx := context.Background()
	deck := s.insertDeck("deck-1", "Spanish Vocabulary")

	got, err := s.repo.Get(ctx, "deck-1")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Assert().Equal(deck.ID, got.ID)
	s.Assert().Equal(deck.Title, got.Title)
	s.Assert().Equal(deck.Description, got.Description)
	s.Assert().Equal(deck.Tags, got.Tags)
	s.Assert().Equal(0, got.CardsCount)
}

func (s *DeckRepositorySuite) TestGetMissingReturnsNil() {
	got, err := s.repo.Get(context.Background(), "nope")
	s.Require().NoError(err)
	s.Assert().Nil(got)
}

func (s *DeckRepositorySuite) TestCardsCount() {
	ctx := context.Background()
	s.insertDeck("deck-1", "Spanish")
	s.insertDeck("deck-2", "French")

	for _, id := range []string{"c1", "c2", "c3"} {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO cards (id, deck_id, front, back) VALUES (?, ?, ?, ?)
		`, id, "deck-1", "hola", "hello")
		s.Require().NoError(err)
	}

	got, err := s.repo.Get(ctx, "deck-1")
	s.Require().NoError(err)
	s.Assert().Equal(3, got.CardsCount)

	got, err = s.repo.Get(ctx, "deck-2")
	s.Require().NoError(err)
	s.Assert().Equal(0, got.CardsCount)
}

func (s *DeckRepositorySuite) TestList() {
	ctx := context.Background()
	s.insertDeck("deck-1", "Spanish")
	s.insertDeck("deck-2", "French")

	decks, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(decks, 2)
}

func (s *DeckRepositorySuite) TestUpdate() {
	ctx := context.Background()
	deck := s.insertDeck("deck-1", "Spanish")

	deck.Title = "Spanish B1"
	deck.Tags = []string{"language"}
	s.Require().NoError(s.repo.Update(ctx, deck))

	got, err := s.repo.Get(ctx, "deck-1")
	s.Require().NoError(err)
	s.Assert().Equal("Spanish B1", got.Title)
	s.Assert().Equal([]string{"language"}, got.Tags)
}

func (s *DeckRepositorySuite) TestUpdateMissingReturnsNoRows() {
	err := s.repo.Update(context.Background(), models.Deck{ID: "nope", Title: "x"})
	s.Assert().ErrorIs(err, sql.ErrNoRows)
}

func (s *DeckRepositorySuite) TestDeleteCascadesToCards() {
	ctx := context.Background()
	s.insertDeck("deck-1", "Spanish")
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cards (id, deck_id, front, back) VALUES (?, ?, ?, ?)
	`, "c1", "deck-1", "hola", "hello")
	s.Require().NoError(err)

	s.Require().NoError(s.repo.Delete(ctx, "deck-1"))

	var n int
	s.Require().NoError(s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cards`).Scan(&n))
	s.Assert().Equal(0, n)
}

func (s *DeckRepositorySuite) TestCount() {
	ctx := context.Background()
	n, err := s.repo.Count(ctx)
	s.Require().NoError(err)
	s.Assert().Equal(0, n)

	s.insertDeck("deck-1", "Spanish")
	n, err = s.repo.Count(ctx)
	s.Require().NoError(err)
	s.Assert().Equal(1, n)
}

func TestDeckRepositorySuite(t *testing.T) {
	suite.Run(t, new(DeckRepositorySuite))
}
