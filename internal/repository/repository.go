package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
)

type Repository struct {
	db      *pgxpool.Pool
	Gallery GalleryRepository
	Guess   GuessRepository
	User    UserRepository
}

func NewRepository(ctx context.Context, dsn string) (*Repository, error) {
	db, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repository{
		db:      db,
		Gallery: NewGalleryRepository(db),
		Guess:   NewGuessRepository(db),
		User:    NewUserRepository(db),
	}, nil
}

func (r *Repository) DB() *pgxpool.Pool {
	return r.db
}

func (r *Repository) Close() {
	r.db.Close()
}
