package services

import (
	"context"
	"fmt"

	uuid "github.com/gofrs/uuid"

	commentErrors "github.com/vidtube/api/comments/errors"
	"github.com/vidtube/api/comments/models"
	commentRepository "github.com/vidtube/api/comments/repository"
	"github.com/vidtube/api/comments/validation"
	"github.com/vidtube/api/internal/cache"
	"github.com/vidtube/api/internal/pkg/log"
)

// CommentService defines the business operations for comments.
type CommentService interface {
	GetVideoComments(ctx context.Context, videoID, viewerID uuid.UUID, filter models.CommentQueryFilter) (*models.CommentsListResponse, error)
	AddComment(ctx context.Context, videoID, ownerID uuid.UUID, req *models.AddCommentRequest) (*models.Comment, error)
	UpdateComment(ctx context.Context, commentID, userID uuid.UUID, req *models.UpdateCommentRequest) (*models.Comment, error)
	DeleteComment(ctx context.Context, commentID, userID uuid.UUID) (*models.Comment, error)
}

type commentService struct {
	repo  commentRepository.CommentRepository
	cache *cache.Service
}

// NewCommentService creates a comment service. The cache service may be nil.
func NewCommentService(repo commentRepository.CommentRepository, cacheService *cache.Service) CommentService {
	return &commentService{repo: repo, cache: cacheService}
}

func (s *commentService) GetVideoComments(ctx context.Context, videoID, viewerID uuid.UUID, filter models.CommentQueryFilter) (*models.CommentsListResponse, error) {
	if videoID == uuid.Nil {
		return nil, fmt.Errorf("%w: video id is required", commentErrors.ErrInvalidUUID)
	}
	if err := validation.ValidateCommentQueryFilter(&filter); err != nil {
		return nil, fmt.Errorf("%w: %v", commentErrors.ErrValidationFailed, err)
	}

	cacheKey := listCacheKey(videoID, viewerID, filter)
	if s.cacheEnabled() {
		var cached models.CommentsListResponse
		if err := s.cache.GetCached(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	comments, err := s.repo.FindEnrichedByVideoID(ctx, videoID, viewerID, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.CountByVideoID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / filter.Limit
	if int(total)%filter.Limit != 0 {
		totalPages++
	}

	response := &models.CommentsListResponse{
		Comments:   comments,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		HasNext:    filter.Page < totalPages,
	}

	if s.cacheEnabled() {
		if err := s.cache.CacheData(ctx, cacheKey, response); err != nil && err != cache.ErrCacheDisabled {
			log.WarnWithContext(ctx, "Failed to cache comment list for video %s: %v", videoID, err)
		}
	}
	return response, nil
}

func (s *commentService) AddComment(ctx context.Context, videoID, ownerID uuid.UUID, req *models.AddCommentRequest) (*models.Comment, error) {
	if videoID == uuid.Nil {
		return nil, fmt.Errorf("%w: video id is required", commentErrors.ErrInvalidUUID)
	}
	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("%w: owner id is required", commentErrors.ErrInvalidUUID)
	}
	if err := validation.ValidateAddCommentRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", commentErrors.ErrValidationFailed, err)
	}

	comment := &models.Comment{
		VideoID:     videoID,
		OwnerUserID: ownerID,
		Content:     req.Content,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.invalidateVideoCache(ctx, videoID)
	return comment, nil
}

func (s *commentService) UpdateComment(ctx context.Context, commentID, userID uuid.UUID, req *models.UpdateCommentRequest) (*models.Comment, error) {
	if commentID == uuid.Nil {
		return nil, fmt.Errorf("%w: comment id is required", commentErrors.ErrInvalidUUID)
	}
	if err := validation.ValidateUpdateCommentRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", commentErrors.ErrValidationFailed, err)
	}

	existing, err := s.repo.FindByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if existing.OwnerUserID != userID {
		return nil, commentErrors.ErrCommentOwnershipRequired
	}

	updated, err := s.repo.UpdateContent(ctx, commentID, req.Content)
	if err != nil {
		return nil, err
	}

	s.invalidateVideoCache(ctx, updated.VideoID)
	return updated, nil
}

func (s *commentService) DeleteComment(ctx context.Context, commentID, userID uuid.UUID) (*models.Comment, error) {
	if commentID == uuid.Nil {
		return nil, fmt.Errorf("%w: comment id is required", commentErrors.ErrInvalidUUID)
	}

	existing, err := s.repo.FindByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if existing.OwnerUserID != userID {
		return nil, commentErrors.ErrCommentOwnershipRequired
	}

	deleted, err := s.repo.Delete(ctx, commentID)
	if err != nil {
		return nil, err
	}

	log.InfoWithContext(ctx, "Comment %s deleted from video %s", commentID, deleted.VideoID)
	s.invalidateVideoCache(ctx, deleted.VideoID)
	return deleted, nil
}

func (s *commentService) cacheEnabled() bool {
	return s.cache != nil && s.cache.IsEnabled()
}

func (s *commentService) invalidateVideoCache(ctx context.Context, videoID uuid.UUID) {
	if !s.cacheEnabled() {
		return
	}
	pattern := fmt.Sprintf("comments:%s:*", videoID)
	if err := s.cache.InvalidatePattern(ctx, pattern); err != nil && err != cache.ErrCacheDisabled {
		log.WarnWithContext(ctx, "Failed to invalidate comment cache for video %s: %v", videoID, err)
	}
}

func listCacheKey(videoID, viewerID uuid.UUID, filter models.CommentQueryFilter) string {
	viewer := "anon"
	if viewerID != uuid.Nil {
		viewer = viewerID.String()
	}
	return fmt.Sprintf("comments:%s:page:%d:limit:%d:viewer:%s", videoID, filter.Page, filter.Limit, viewer)
}
