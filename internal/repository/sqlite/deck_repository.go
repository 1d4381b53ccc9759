package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog"

	"github.com/memodeck/memodeck/internal/models"
	"github.com/memodeck/memodeck/internal/repository"
)

type deckRepository struct {
	db *sql.DB
}

// NewDeckRepository creates a new DeckRepository implementation
func NewDeckRepository(db *sql.DB) repository.DeckRepository {
	return &deckRepository{db: db}
}

func (r *deckRepository) Get(ctx context.Context, id string) (*models.Deck, error) {
	var (
		d    models.Deck
		tags string
	)
	err := r.db.QueryRowContext(ctx, `
SELECT d.id, d.title, d.description, d.tags, d.created_at, d.updated_at,
       (SELECT COUNT(*) FROM cards c WHERE c.deck_id = d.id) AS cards_count
FROM decks d
WHERE d.id = ?
`, id).Scan(&d.ID, &d.Title, &d.Description, &tags, &d.CreatedAt, &d.UpdatedAt, &d.CardsCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	d.Tags = decodeTags(tags)
	return &d, nil
}

func (r *deckRepository) List(ctx context.Context) ([]models.Deck, error) {
	log := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, `
SELECT d.id, d.title, d.description, d.tags, d.created_at, d.updated_at,
       (SELECT COUNT(*) FROM cards c WHERE c.deck_id = d.id) AS cards_count
FROM decks d
ORDER BY d.created_at ASC
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var decks []models.Deck
	for rows.Next() {
		var (
			d    models.Deck
			tags string
		)
		if err := rows.Scan(&d.ID, &d.Title, &d.Description, &tags, &d.CreatedAt, &d.UpdatedAt, &d.CardsCount); err != nil {
			return nil, err
		}
		d.Tags = decodeTags(tags)
		decks = append(decks, d)
	}
	log.Debug().Int("count", len(decks)).Msg("listed decks")
	return decks, rows.Err()
}

func (r *deckRepository) Insert(ctx context.Context, deck models.Deck) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO decks (id, title, description, tags, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
`, deck.ID, deck.Title, deck.Description, encodeTags(deck.Tags), deck.CreatedAt, deck.UpdatedAt)
	return err
}

func (r *deckRepository) Update(ctx context.Context, deck models.Deck) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE decks
SET title = ?, description = ?, tags = ?, updated_at = ?
WHERE id = ?
`, deck.Title, deck.Description, encodeTags(deck.Tags), deck.UpdatedAt, deck.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}

func (r *deckRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM decks WHERE id = ?`, id)
	return err
}

func (r *deckRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM decks`).Scan(&n)
	return n, err
}
