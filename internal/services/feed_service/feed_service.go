package services

import (
	"context"
	"fmt"
	"log/slog"

	"petgallery/internal/domain/models"
	"petgallery/internal/lib/logger/sl"
	"petgallery/internal/metrics"
	"petgallery/internal/repository"

	"github.com/google/uuid"
)

type FeedService struct {
	log  *slog.Logger
	repo repository.GalleryRepository
}

func NewFeedService(log *slog.Logger, repo repository.GalleryRepository) *FeedService {
	return &FeedService{
		log:  log,
		repo: repo,
	}
}

// Page returns one feed window of public items, newest first. Total is an
// exact count from an independent query, so hasNextPage may drift under
// concurrent inserts; callers absorb the overlap by de-duplicating.
func (s *FeedService) Page(ctx context.Context, offset, limit int) (*models.FeedPage, error) {
	const op = "service.FeedService.Page"
	log := s.log.With(
		slog.String("op", op),
		slog.Int("offset", offset),
		slog.Int("limit", limit),
	)

	total, err := s.repo.CountPublic(ctx)
	if err != nil {
		log.Error("failed to count public items", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items, err := s.repo.ListPublic(ctx, offset, limit)
	if err != nil {
		log.Error("failed to list public items", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items = dedupeByID(items)

	totalPages := (total + limit - 1) / limit

	page := &models.FeedPage{
		Items: items,
		Pagination: models.Pagination{
			Page:        offset/limit + 1,
			Limit:       limit,
			Total:       total,
			TotalPages:  totalPages,
			HasNextPage: offset+len(items) < total,
			HasPrevPage: offset > 0,
		},
	}

	metrics.FeedPagesServed.Inc()
	log.Info("feed page served", slog.Int("items", len(items)), slog.Int("total", total))

	return page, nil
}

// dedupeByID drops repeated ids within one page. The store should not
// produce duplicates in a single range query; the contract guarantees it
// regardless.
func dedupeByID(items []models.GalleryItem) []models.GalleryItem {
	if len(items) < 2 {
		return items
	}

	seen := make(map[uuid.UUID]struct{}, len(items))
	out := items[:0]
	for _, item := range items {
		if _, ok := seen[item.ID]; ok {
			continue
		}
		seen[item.ID] = struct{}{}
		out = append(out, item)
	}

	return out
}
