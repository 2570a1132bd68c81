package repository

import (
	"context"
	"errors"
	"fmt"

	"petgallery/internal/domain/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const guessesTable = "guesses"

type GuessRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewGuessRepository(db *pgxpool.Pool) *GuessRepo {
	return &GuessRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SaveGuess records one guess attempt. Duplicates per (user, item) are
// allowed: every session open grants fresh attempts.
func (r *GuessRepo) SaveGuess(ctx context.Context, guess models.Guess) (uuid.UUID, error) {
	const op = "repository.GuessRepo.SaveGuess"

	query, args, err := r.sb.Insert(guessesTable).
		Columns(
			"gallery_item_id",
			"user_id",
			"guessed_name",
			"is_correct",
		).
		Values(
			guess.GalleryItemID,
			guess.UserID,
			guess.GuessedName,
			guess.IsCorrect,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	err = r.db.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *GuessRepo) UserStats(ctx context.Context, userID uuid.UUID) (models.UserStats, error) {
	const op = "repository.GuessRepo.UserStats"

	query, args, err := r.sb.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE is_correct)",
	).
		From(guessesTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return models.UserStats{}, fmt.Errorf("%s: %w", op, err)
	}

	var stats models.UserStats
	err = r.db.QueryRow(ctx, query, args...).Scan(&stats.TotalGuesses, &stats.CorrectGuesses)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.UserStats{}, nil
		}
		return models.UserStats{}, fmt.Errorf("%s: %w", op, err)
	}

	return stats, nil
}
