package repository

import (
	"context"
	"time"

	"petgallery/internal/domain/models"

	"github.com/google/uuid"
)

type GalleryRepository interface {
	SaveItem(ctx context.Context, item models.GalleryItem) (uuid.UUID, error)
	GetItemByID(ctx context.Context, id uuid.UUID) (models.GalleryItem, error)
	ListPublic(ctx context.Context, offset, limit int) ([]models.GalleryItem, error)
	CountPublic(ctx context.Context) (int, error)
	DistinctNames(ctx context.Context) ([]string, error)
}

type GuessRepository interface {
	SaveGuess(ctx context.Context, guess models.Guess) (uuid.UUID, error)
	UserStats(ctx context.Context, userID uuid.UUID) (models.UserStats, error)
}

type UserRepository interface {
	SaveUser(ctx context.Context, user models.User) (uuid.UUID, error)
	UserByIdentifier(ctx context.Context, identifier string) (models.User, error)
	GetUserById(ctx context.Context, userID uuid.UUID) (models.User, error)
}

type TokenRepository interface {
	SaveRefreshToken(ctx context.Context, userID, token string, exp time.Duration) error
	GetRefreshToken(ctx context.Context, userID, token string) (bool, error)
	DeleteRefreshToken(ctx context.Context, userID, token string) error
	DeleteAllUserTokens(ctx context.Context, userID string) error
}

// PrefsRepository is a small key-value preference store keyed per user. The
// one-time vote prompt flag lives here instead of ambient client storage.
type PrefsRepository interface {
	Get(ctx context.Context, userID, key string) (string, bool, error)
	Set(ctx context.Context, userID, key, value string) error
}
