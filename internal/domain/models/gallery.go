package models

import (
	"time"

	"github.com/google/uuid"
)

// GalleryItem is a published avatar post. Items are insert-only within the
// gallery scope: never updated or deleted once created.
type GalleryItem struct {
	ID             uuid.UUID `db:"id" json:"id"`
	UserID         uuid.UUID `db:"user_id" json:"-"`
	PersonName     *string   `db:"person_name" json:"person_name"`
	GeneratedImage string    `db:"generated_image" json:"generated_image"` // URL or inline data URI
	IsPublic       bool      `db:"is_public" json:"-"`
	CreatedAt      time.Time `db:"created_at" json:"-"`
}

// Pagination is a derived view of one feed window, recomputed per request.
// Total is an exact count at request time, not a snapshot-consistent cursor.
type Pagination struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// FeedPage is the result of one pagination request. Not persisted.
type FeedPage struct {
	Items      []GalleryItem `json:"items"`
	Pagination Pagination    `json:"pagination"`
}
