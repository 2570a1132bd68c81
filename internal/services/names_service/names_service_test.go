package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"petgallery/internal/domain/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockGalleryRepository struct {
	mock.Mock
}

func (m *MockGalleryRepository) SaveItem(ctx context.Context, item models.GalleryItem) (uuid.UUID, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockGalleryRepository) GetItemByID(ctx context.Context, id uuid.UUID) (models.GalleryItem, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.GalleryItem), args.Error(1)
}

func (m *MockGalleryRepository) ListPublic(ctx context.Context, offset, limit int) ([]models.GalleryItem, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GalleryItem), args.Error(1)
}

func (m *MockGalleryRepository) CountPublic(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockGalleryRepository) DistinctNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func TestNamesService_Names(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()

	t.Run("returns the sorted directory as-is", func(t *testing.T) {
		mockRepo := new(MockGalleryRepository)
		service := NewNamesService(log, mockRepo)

		mockRepo.On("DistinctNames", ctx).
			Return([]string{"Alice", "Bob", "Carol"}, nil).Once()

		names, err := service.Names(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Alice", "Bob", "Carol"}, names)
	})

	t.Run("nil directory becomes an empty slice", func(t *testing.T) {
		mockRepo := new(MockGalleryRepository)
		service := NewNamesService(log, mockRepo)

		mockRepo.On("DistinctNames", ctx).Return([]string{}, nil).Once()

		names, err := service.Names(ctx)
		require.NoError(t, err)
		assert.NotNil(t, names)
		assert.Empty(t, names)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo := new(MockGalleryRepository)
		service := NewNamesService(log, mockRepo)

		mockRepo.On("DistinctNames", ctx).Return(nil, errors.New("db error")).Once()

		_, err := service.Names(ctx)
		assert.ErrorContains(t, err, "db error")
	})
}
