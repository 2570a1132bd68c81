package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"petgallery/internal/domain/models"
	"petgallery/internal/lib/logger/sl"
	"petgallery/internal/repository"
	"petgallery/internal/transport/http/dto"

	"github.com/google/uuid"
)

var (
	ErrNameRequired  = errors.New("person name is required")
	ErrImageRequired = errors.New("generated image is required")
	ErrImageTooLarge = errors.New("generated image exceeds size limit")
	ErrBadImage      = errors.New("generated image must be a data URI or URL")
)

type GalleryService struct {
	log           *slog.Logger
	repo          repository.GalleryRepository
	maxImageBytes int64
}

func NewGalleryService(log *slog.Logger, repo repository.GalleryRepository, maxImageBytes int64) *GalleryService {
	return &GalleryService{
		log:           log,
		repo:          repo,
		maxImageBytes: maxImageBytes,
	}
}

// CreateItem validates and inserts one public gallery item on behalf of an
// authenticated user. Items are immutable after creation.
func (s *GalleryService) CreateItem(ctx context.Context, userID uuid.UUID, req dto.GenerateRequest) (uuid.UUID, error) {
	const op = "service.GalleryService.CreateItem"
	log := s.log.With(
		slog.String("op", op),
		slog.String("user_id", userID.String()),
	)

	name := strings.TrimSpace(req.PersonName)
	if name == "" {
		log.Warn("empty person name")
		return uuid.Nil, ErrNameRequired
	}

	image := req.GeneratedImage
	if image == "" {
		log.Warn("empty generated image")
		return uuid.Nil, ErrImageRequired
	}
	if !strings.HasPrefix(image, "data:") && !strings.HasPrefix(image, "http://") && !strings.HasPrefix(image, "https://") {
		log.Warn("image is neither data URI nor URL")
		return uuid.Nil, ErrBadImage
	}
	if s.maxImageBytes > 0 && int64(len(image)) > s.maxImageBytes {
		log.Warn("image too large", slog.Int("size", len(image)))
		return uuid.Nil, ErrImageTooLarge
	}

	item := models.GalleryItem{
		UserID:         userID,
		PersonName:     &name,
		GeneratedImage: image,
		IsPublic:       true,
	}

	id, err := s.repo.SaveItem(ctx, item)
	if err != nil {
		log.Error("failed to save gallery item", sl.Err(err))
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("gallery item created", slog.String("item_id", id.String()))

	return id, nil
}
