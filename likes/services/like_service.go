package services

import (
	"context"
	"fmt"

	uuid "github.com/gofrs/uuid"

	"github.com/vidtube/api/internal/cache"
	"github.com/vidtube/api/internal/pkg/log"
	likeErrors "github.com/vidtube/api/likes/errors"
	"github.com/vidtube/api/likes/models"
	likeRepository "github.com/vidtube/api/likes/repository"
)

// LikeService defines the business operations for likes.
type LikeService interface {
	ToggleVideoLike(ctx context.Context, videoID, userID uuid.UUID) (*models.ToggleResponse, error)
	ToggleCommentLike(ctx context.Context, commentID, userID uuid.UUID) (*models.ToggleResponse, error)
	ToggleTweetLike(ctx context.Context, tweetID, userID uuid.UUID) (*models.ToggleResponse, error)
	GetLikedVideos(ctx context.Context, userID uuid.UUID) ([]models.LikedVideo, error)
}

type likeService struct {
	repo  likeRepository.LikeRepository
	cache *cache.Service
}

// NewLikeService creates a like service. The cache service may be nil.
func NewLikeService(repo likeRepository.LikeRepository, cacheService *cache.Service) LikeService {
	return &likeService{repo: repo, cache: cacheService}
}

func (s *likeService) ToggleVideoLike(ctx context.Context, videoID, userID uuid.UUID) (*models.ToggleResponse, error) {
	return s.toggle(ctx, models.TargetVideo, videoID, userID)
}

func (s *likeService) ToggleCommentLike(ctx context.Context, commentID, userID uuid.UUID) (*models.ToggleResponse, error) {
	resp, err := s.toggle(ctx, models.TargetComment, commentID, userID)
	if err != nil {
		return nil, err
	}
	// Comment like counts are baked into cached comment listings.
	s.invalidateCommentCache(ctx)
	return resp, nil
}

func (s *likeService) ToggleTweetLike(ctx context.Context, tweetID, userID uuid.UUID) (*models.ToggleResponse, error) {
	return s.toggle(ctx, models.TargetTweet, tweetID, userID)
}

// toggle flips the like state for (kind, targetID, likedBy) and reports
// the resulting state. Insert runs first: the unique constraint makes a
// concurrent duplicate insert a no-op, so exactly one of two racing
// toggles wins the insert and the other falls through to the delete.
func (s *likeService) toggle(ctx context.Context, kind models.TargetKind, targetID, userID uuid.UUID) (*models.ToggleResponse, error) {
	if !kind.IsValid() {
		return nil, likeErrors.ErrInvalidTargetKind
	}
	if targetID == uuid.Nil {
		return nil, fmt.Errorf("%w: target id is required", likeErrors.ErrInvalidUUID)
	}
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user id is required", likeErrors.ErrInvalidUUID)
	}

	like := &models.Like{
		TargetKind: kind,
		TargetID:   targetID,
		LikedBy:    userID,
	}

	inserted, err := s.repo.Insert(ctx, like)
	if err != nil {
		return nil, err
	}
	if inserted {
		return &models.ToggleResponse{IsLiked: true}, nil
	}

	if _, err := s.repo.Remove(ctx, kind, targetID, userID); err != nil {
		return nil, err
	}
	return &models.ToggleResponse{IsLiked: false}, nil
}

func (s *likeService) GetLikedVideos(ctx context.Context, userID uuid.UUID) ([]models.LikedVideo, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user id is required", likeErrors.ErrInvalidUUID)
	}
	return s.repo.FindLikedVideos(ctx, userID)
}

func (s *likeService) invalidateCommentCache(ctx context.Context) {
	if s.cache == nil || !s.cache.IsEnabled() {
		return
	}
	if err := s.cache.InvalidatePattern(ctx, "comments:*"); err != nil && err != cache.ErrCacheDisabled {
		log.WarnWithContext(ctx, "Failed to invalidate comment cache after like toggle: %v", err)
	}
}
