package models

import (
	"time"

	"github.com/google/uuid"
)

// Guess is one persisted guess attempt against a gallery item.
type Guess struct {
	ID            uuid.UUID `db:"id" json:"id"`
	GalleryItemID uuid.UUID `db:"gallery_item_id" json:"gallery_item_id"`
	UserID        uuid.UUID `db:"user_id" json:"user_id"`
	GuessedName   string    `db:"guessed_name" json:"guessed_name"`
	IsCorrect     bool      `db:"is_correct" json:"is_correct"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// UserStats aggregates a user's guessing history.
type UserStats struct {
	TotalGuesses   int `json:"total_guesses"`
	CorrectGuesses int `json:"correct_guesses"`
}
