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

func makeItems(n int) []models.GalleryItem {
	items := make([]models.GalleryItem, n)
	for i := range items {
		items[i] = models.GalleryItem{ID: uuid.New()}
	}
	return items
}

func TestFeedService_Page(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()

	t.Run("first oversized page of twenty items", func(t *testing.T) {
		mockRepo := new(MockGalleryRepository)
		service := NewFeedService(log, mockRepo)

		all := makeItems(20)
		mockRepo.On("CountPublic", ctx).Return(20, nil).Once()
		mockRepo.On("ListPublic", ctx, 0, 16).Return(all[:16], nil).Once()

		page, err := service.Page(ctx, 0, 16)
		require.NoError(t, err)

		assert.Len(t, page.Items, 16)
		assert.Equal(t, 1, page.Pagination.Page)
		assert.Equal(t, 20, page.Pagination.Total)
		assert.Equal(t, 2, page.Pagination.TotalPages)
		assert.True(t, page.Pagination.HasNextPage)
		assert.False(t, page.Pagination.HasPrevPage)
	})

	t.Run("trailing partial page closes the feed", func(t *testing.T) {
		mockRepo := new(MockGalleryRepository)
		service := NewFeedService(log, mockRepo)

		all := makeItems(20)
		mockRepo.On("CountPublic", ctx).Return(20, nil).Once()
		mockRepo.On("ListPublic", ctx, 16, 8).Return(all[16:], nil).Once()

		page, err := service.Page(ctx, 16, 8)
		require.NoError(t, err)

		assert.Len(t, page.Items, 4)
		assert.False(t, page.Pagination.HasNextPage)
		assert.True(t, page.Pagination.HasPrevPage)
	})

	t.Run("empty gallery is a valid page, not an error", func(t *testing.T) {
		mockRepo := new(MockGalleryRepository)
		service := NewFeedService(log, mockRepo)

		mockRepo.On("CountPublic", ctx).Return(0, nil).Once()
		mockRepo.On("ListPublic", ctx, 0, 8).Return([]models.GalleryItem{}, nil).Once()

		page, err := service.Page(ctx, 0, 8)
		require.NoError(t, err)

		assert.Empty(t, page.Items)
		assert.Equal(t, 0, page.Pagination.Total)
		assert.False(t, page.Pagination.HasNextPage)
	})

	t.Run("duplicate ids within one window are dropped", func(t *testing.T) {
		mockRepo := new(MockGalleryRepository)
		service := NewFeedService(log, mockRepo)

		items := makeItems(3)
		withDup := []models.GalleryItem{items[0], items[1], items[1], items[2]}

		mockRepo.On("CountPublic", ctx).Return(4, nil).Once()
		mockRepo.On("ListPublic", ctx, 0, 8).Return(withDup, nil).Once()

		page, err := service.Page(ctx, 0, 8)
		require.NoError(t, err)

		assert.Len(t, page.Items, 3)
	})

	t.Run("count failure", func(t *testing.T) {
		mockRepo := new(MockGalleryRepository)
		service := NewFeedService(log, mockRepo)

		mockRepo.On("CountPublic", ctx).Return(0, errors.New("db error")).Once()

		_, err := service.Page(ctx, 0, 8)
		assert.ErrorContains(t, err, "db error")
	})

	t.Run("list failure", func(t *testing.T) {
		mockRepo := new(MockGalleryRepository)
		service := NewFeedService(log, mockRepo)

		mockRepo.On("CountPublic", ctx).Return(10, nil).Once()
		mockRepo.On("ListPublic", ctx, 0, 8).Return(nil, errors.New("db error")).Once()

		_, err := service.Page(ctx, 0, 8)
		assert.ErrorContains(t, err, "db error")
	})
}
