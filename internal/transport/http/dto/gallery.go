package dto

import (
	"github.com/google/uuid"

	"petgallery/internal/domain/models"
)

// FeedPageResponse is the body of GET /gallery.
type FeedPageResponse struct {
	Items      []models.GalleryItem `json:"items"`
	Pagination models.Pagination    `json:"pagination"`
}

// NamesResponse is the body of GET /names.
type NamesResponse struct {
	Names []string `json:"names"`
	Count int      `json:"count"`
}

// GenerateRequest matches the upload flow's wire format.
type GenerateRequest struct {
	PersonName     string `json:"personName" validate:"required"`
	GeneratedImage string `json:"generatedImage" validate:"required"`
}

type GenerateResponse struct {
	Success bool      `json:"success"`
	ItemID  uuid.UUID `json:"itemId"`
	Message string    `json:"message"`
}
