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

const galleryItemsTable = "gallery_items"

type GalleryRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewGalleryRepository(db *pgxpool.Pool) *GalleryRepo {
	return &GalleryRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SaveItem inserts one gallery item and returns its server-assigned ID.
func (r *GalleryRepo) SaveItem(ctx context.Context, item models.GalleryItem) (uuid.UUID, error) {
	const op = "repository.GalleryRepo.SaveItem"

	query, args, err := r.sb.Insert(galleryItemsTable).
		Columns(
			"user_id",
			"person_name",
			"generated_image",
			"is_public",
		).
		Values(
			item.UserID,
			item.PersonName,
			item.GeneratedImage,
			item.IsPublic,
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

func (r *GalleryRepo) GetItemByID(ctx context.Context, id uuid.UUID) (models.GalleryItem, error) {
	const op = "repository.GalleryRepo.GetItemByID"

	query, args, err := r.sb.Select(
		"id",
		"user_id",
		"person_name",
		"generated_image",
		"is_public",
		"created_at",
	).
		From(galleryItemsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.GalleryItem{}, fmt.Errorf("%s: %w", op, err)
	}

	var item models.GalleryItem
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&item.ID,
		&item.UserID,
		&item.PersonName,
		&item.GeneratedImage,
		&item.IsPublic,
		&item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.GalleryItem{}, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return models.GalleryItem{}, fmt.Errorf("%s: %w", op, err)
	}

	return item, nil
}

// ListPublic returns up to limit public items ordered newest-first starting
// at offset.
func (r *GalleryRepo) ListPublic(ctx context.Context, offset, limit int) ([]models.GalleryItem, error) {
	const op = "repository.GalleryRepo.ListPublic"

	query, args, err := r.sb.Select(
		"id",
		"user_id",
		"person_name",
		"generated_image",
		"is_public",
		"created_at",
	).
		From(galleryItemsTable).
		Where(sq.Eq{"is_public": true}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []models.GalleryItem
	for rows.Next() {
		var item models.GalleryItem
		err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.PersonName,
			&item.GeneratedImage,
			&item.IsPublic,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		items = append(items, item)
	}

	return items, nil
}

// CountPublic returns the exact count of all public items. Independent of any
// pagination window.
func (r *GalleryRepo) CountPublic(ctx context.Context) (int, error) {
	const op = "repository.GalleryRepo.CountPublic"

	query, args, err := r.sb.Select("COUNT(*)").
		From(galleryItemsTable).
		Where(sq.Eq{"is_public": true}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var count int
	err = r.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

// DistinctNames returns the de-duplicated, sorted set of person names across
// public items with a non-null name.
func (r *GalleryRepo) DistinctNames(ctx context.Context) ([]string, error) {
	const op = "repository.GalleryRepo.DistinctNames"

	query, args, err := r.sb.Select("DISTINCT person_name").
		From(galleryItemsTable).
		Where(sq.Eq{"is_public": true}).
		Where(sq.NotEq{"person_name": nil}).
		OrderBy("person_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		names = append(names, name)
	}

	return names, nil
}
