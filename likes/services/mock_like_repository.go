package services

import (
	"context"

	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/vidtube/api/likes/models"
	likeRepository "github.com/vidtube/api/likes/repository"
)

// MockLikeRepository is a mock implementation of LikeRepository for testing
type MockLikeRepository struct {
	mock.Mock
}

// Ensure MockLikeRepository implements LikeRepository
var _ likeRepository.LikeRepository = (*MockLikeRepository)(nil)

func (m *MockLikeRepository) Insert(ctx context.Context, like *models.Like) (bool, error) {
	args := m.Called(ctx, like)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) Remove(ctx context.Context, kind models.TargetKind, targetID, likedBy uuid.UUID) (bool, error) {
	args := m.Called(ctx, kind, targetID, likedBy)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) FindLikedVideos(ctx context.Context, likedBy uuid.UUID) ([]models.LikedVideo, error) {
	args := m.Called(ctx, likedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LikedVideo), args.Error(1)
}
