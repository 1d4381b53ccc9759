package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/rs/zerolog"

	"github.com/memodeck/memodeck/internal/models"
	"github.com/memodeck/memodeck/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type cardRepository struct {
	db *sql.DB
}

// NewCardRepository creates a new CardRepository implementation
func NewCardRepository(db *sql.DB) repository.CardRepository {
	return &cardRepository{db: db}
}

func (r *cardRepository) Get(ctx context.Context, id string) (*models.Card, error) {
	var (
		c    models.Card
		tags string
	)
	err := r.db.QueryRowContext(ctx, `
SELECT id, deck_id, front, back, tags, created_at, updated_at
FROM cards
WHERE id = ?
`, id).Scan(&c.ID, &c.DeckID, &c.Front, &c.Back, &tags, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.Tags = decodeTags(tags)
	return &c, nil
}

func (r *cardRepository) List(ctx context.Context, filter models.CardFilter) ([]models.Card, error) {
	log := zerolog.Ctx(ctx)

	query := sqlBuilder.
		Select("id", "deck_id", "front", "back", "tags", "created_at", "updated_at").
		From("cards").
		OrderBy("created_at ASC")

	if filter.DeckID != "" {
		query = query.Where(squirrel.Eq{"deck_id": filter.DeckID})
	}
	if filter.Tag != "" {
		// Tags are a JSON array; a LIKE match on the quoted value is
		// sufficient for the exact-tag filter.
		query = query.Where(squirrel.Like{"tags": `%"` + filter.Tag + `"%`})
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []models.Card
	for rows.Next() {
		var (
			c    models.Card
			tags string
		)
		if err := rows.Scan(&c.ID, &c.DeckID, &c.Front, &c.Back, &tags, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		c.Tags = decodeTags(tags)
		cards = append(cards, c)
	}
	log.Debug().Int("count", len(cards)).Str("deck_id", filter.DeckID).Msg("listed cards")
	return cards, rows.Err()
}

func (r *cardRepository) Insert(ctx context.Context, card models.Card) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO cards (id, deck_id, front, back, tags, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, card.ID, card.DeckID, card.Front, card.Back, encodeTags(card.Tags), card.CreatedAt, card.UpdatedAt)
	return err
}

func (r *cardRepository) Update(ctx context.Context, card models.Card) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE cards
SET deck_id = ?, front = ?, back = ?, tags = ?, updated_at = ?
WHERE id = ?
`, card.DeckID, card.Front, card.Back, encodeTags(card.Tags), card.UpdatedAt, card.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}

func (r *cardRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cards WHERE id = ?`, id)
	return err
}

func (r *cardRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cards`).Scan(&n)
	return n, err
}
