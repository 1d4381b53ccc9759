package models

import "time"

type Deck struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	CardsCount  int       `json:"cards_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Card struct {
	ID        string    `json:"id"`
	DeckID    string    `json:"deck_id"`
	Front     string    `json:"front"`
	Back      string    `json:"back"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CardFilter struct {
	DeckID string
	Tag    string
	Limit  int
	Offset int
}
