package services

import (
	"context"
	"fmt"
	"log/slog"

	"petgallery/internal/lib/logger/sl"
	"petgallery/internal/repository"
)

type NamesService struct {
	log  *slog.Logger
	repo repository.GalleryRepository
}

func NewNamesService(log *slog.Logger, repo repository.GalleryRepository) *NamesService {
	return &NamesService{
		log:  log,
		repo: repo,
	}
}

// Names returns the full sorted, duplicate-free name directory. Recomputed
// on every request; clients fetch it once per feed session and cache it for
// distractor generation.
func (s *NamesService) Names(ctx context.Context) ([]string, error) {
	const op = "service.NamesService.Names"
	log := s.log.With(slog.String("op", op))

	names, err := s.repo.DistinctNames(ctx)
	if err != nil {
		log.Error("failed to fetch name directory", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if names == nil {
		names = []string{}
	}

	return names, nil
}
