package services

import (
	"context"
	"errors"
	"testing"
	"time"

	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	commentErrors "github.com/vidtube/api/comments/errors"
	"github.com/vidtube/api/comments/models"
)

func TestCommentService_GetVideoComments(t *testing.T) {
	ctx := context.Background()
	videoID := uuid.Must(uuid.NewV4())
	viewerID := uuid.Must(uuid.NewV4())

	t.Run("Returns enriched page with pagination metadata", func(t *testing.T) {
		mockRepo := new(MockCommentRepository)
		service := NewCommentService(mockRepo, nil)

		enriched := []models.EnrichedComment{
			{
				ID:         uuid.Must(uuid.NewV4()),
				Content:    "great video",
				CreatedAt:  time.Now(),
				LikesCount: 3,
				IsLiked:    true,
				Owner:      models.OwnerDetails{Username: "alice", Fullname: "Alice", Avatar: "a.png"},
			},
		}
		filter := models.CommentQueryFilter{Page: 1, Limit: 10}
		mockRepo.On("FindEnrichedByVideoID", mock.Anything, videoID, viewerID, filter).Return(enriched, nil)
		mockRepo.On("CountByVideoID", mock.Anything, videoID).Return(int64(25), nil)

		result, err := service.GetVideoComments(ctx, videoID, viewerID, filter)

		assert.NoError(t, err)
		assert.Equal(t, enriched, result.Comments)
		assert.Equal(t, int64(25), result.Total)
		assert.Equal(t, 1, result.Page)
		assert.Equal(t, 10, result.Limit)
		assert.Equal(t, 3, result.TotalPages)
		assert.True(t, result.HasNext)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Last page has no next", func(t *testing.T) {
		mockRepo := new(MockCommentRepository)
		service := NewCommentService(mockRepo, nil)

		filter := models.CommentQueryFilter{Page: 3, Limit: 10}
		mockRepo.On("FindEnrichedByVideoID", mock.Anything, videoID, viewerID, filter).Return([]models.EnrichedComment{}, nil)
		mockRepo.On("CountByVideoID", mock.Anything, videoID).Return(int64(25), nil)

		result, err := service.GetVideoComments(ctx, videoID, viewerID, filter)

		assert.NoError(t, err)
		assert.Equal(t, 3, result.TotalPages)
		assert.False(t, result.HasNext)
	})

	t.Run("Defaults applied to out-of-range filter", func(t *testing.T) {
		mockRepo := new(MockCommentRepository)
		service := NewCommentService(mockRepo, nil)

		normalized := models.CommentQueryFilter{Page: 1, Limit: 10}
		mockRepo.On("FindEnrichedByVideoID", mock.Anything, videoID, viewerID, normalized).Return([]models.EnrichedComment{}, nil)
		mockRepo.On("CountByVideoID", mock.Anything, videoID).Return(int64(0), nil)

		result, err := service.GetVideoComments(ctx, videoID, viewerID, models.CommentQueryFilter{Page: -4, Limit: 0})

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Page)
		assert.Equal(t, 10, result.Limit)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Anonymous viewer", func(t *testing.T) {
		mockRepo := new(MockCommentRepository)
		service := NewCommentService(mockRepo, nil)

		filter := models.CommentQueryFilter{Page: 1, Limit: 10}
		mockRepo.On("FindEnrichedByVideoID", mock.Anything, videoID, uuid.Nil, filter).Return([]models.EnrichedComment{}, nil)
		mockRepo.On("CountByVideoID", mock.Anything, videoID).Return(int64(0), nil)

		result, err := service.GetVideoComments(ctx, videoID, uuid.Nil, filter)

		assert.NoError(t, err)
		assert.Empty(t, result.Comments)
	})

	t.Run("Nil video id", func(t *testing.T) {
		mockRepo := new(MockCommentRepository)
		service := NewCommentService(mockRepo, nil)

		result, err := service.GetVideoComments(ctx, uuid.Nil, viewerID, models.CommentQueryFilter{})

		assert.Error(t, err)
		assert.True(t, errors.Is(err, commentErrors.ErrInvalidUUID))
		assert.Nil(t, result)
		mockRepo.AssertNotCalled(t, "FindEnrichedByVideoID")
	})
}

func TestCommentService_AddComment(t *testing.T) {
	ctx := context.Background()
	videoID := uuid.Must(uuid.NewV4())
	ownerID := uuid.Must(uuid.NewV4())

	t.Run("Creates comment", func(t *testing.T) {
		mockRepo := new(MockCommentRepository)
		service := NewCommentService(mockRepo, nil)

		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *models.Comment) bool {
			return c.VideoID == videoID && c.OwnerUserID == ownerID && c.Content == "nice"
		})).Return(nil)

		comment, err := service.AddComment(ctx, videoID, ownerID, &models.AddCommentRequest{Content: "nice"})

		assert.NoError(t, err)
		assert.Equal(t, "nice", comment.Content)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Empty content rejected", func(t *testing.T) {
		mockRepo := new(MockCommentRepository)
		service := NewCommentService(mockRepo, nil)

		comment, err := service.AddComment(ctx, videoID, ownerID, &models.AddCommentRequest{Content: ""})

		assert.Error(t, err)
		assert.True(t, errors.Is(err, commentErrors.ErrValidationFailed))
		assert.Nil(t, comment)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Whitespace-only content rejected", func(t *testing.T) {
		mockRepo := new(MockCommentRepository)
		service := NewCommentService(mockRepo, nil)

		comment, err := service.AddComment(ctx, videoID, ownerID, &models.AddCommentRequest{Content: "   "})

		assert.Error(t, err)
		assert.Nil(t, comment)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Missing video propagates not-found", func(t *testing.T) {
		mockRepo := new(MockCommentRepository)
		service := NewCommentService(mockRepo, nil)

		mockRepo.On("Create", mock.Anything, mock.Anything).Return(commentErrors.ErrVideoNotFound)

		comment, err := service.AddComment(ctx, videoID, ownerID, &models.AddCommentRequest{Content: "hello"})

		assert.Error(t, err)
		assert.True(t, errors.Is(err, commentErrors.ErrVideoNotFound))
		assert.Nil(t, comment)
	})
}

func TestCommentService_UpdateComment(t *testing.T) {
	ctx := context.Background()
	commentID := uuid.Must(uuid.NewV4())
	ownerID := uuid.Must(uuid.NewV4())
	videoID := uuid.Must(uuid.NewV4())

	existing := func() *models.Comment {
		return &models.Comment{
			ID:          commentID,
			VideoID:     videoID,
			OwnerUserID: ownerID,
			Content:     "before",
			CreatedAt:   time.Now().Add(-time.Hour),
		}
	}

	t.Run("Owner updates content", func(t *testing.T) {
		mockRepo := new(MockCommentRepository)
		service := NewCommentService(mockRepo, nil)

		updated := existing()
		updated.Content = "after"

		mockRepo.On("FindByID", mock.Anything, commentID).Return(existing(), nil)
		mockRepo.On("UpdateContent", mock.Anything, commentID, "after").Return(updated, nil)

		comment, err := service.UpdateComment(ctx, commentID, ownerID, &models.UpdateCommentRequest{Content: "after"})

		assert.NoError(t, err)
		assert.Equal(t, "after", comment.Content)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Non-owner forbidden", func(t *testing.T) {
		mockRepo := new(MockCommentRepository)
		service := NewCommentService(mockRepo, nil)

		stranger := uuid.Must(uuid.NewV4())
		mockRepo.On("FindByID", mock.Anything, commentID).Return(existing(), nil)

		comment, err := service.UpdateComment(ctx, commentID, stranger, &models.UpdateCommentRequest{Content: "hijack"})

		assert.Error(t, err)
		assert.True(t, errors.Is(err, commentErrors.ErrCommentOwnershipRequired))
		assert.Nil(t, comment)
		mockRepo.AssertNotCalled(t, "UpdateContent")
	})

	t.Run("Missing comment", func(t *testing.T) {
		mockRepo := new(MockCommentRepository)
		service := NewCommentService(mockRepo, nil)

		mockRepo.On("FindByID", mock.Anything, commentID).Return(nil, commentErrors.ErrCommentNotFound)

		comment, err := service.UpdateComment(ctx, commentID, ownerID, &models.UpdateCommentRequest{Content: "after"})

		assert.Error(t, err)
		assert.True(t, errors.Is(err, commentErrors.ErrCommentNotFound))
		assert.Nil(t, comment)
	})

	t.Run("Empty content rejected before lookup", func(t *testing.T) {
		mockRepo := new(MockCommentRepository)
		service := NewCommentService(mockRepo, nil)

		comment, err := service.UpdateComment(ctx, commentID, ownerID, &models.UpdateCommentRequest{Content: ""})

		assert.Error(t, err)
		assert.Nil(t, comment)
		mockRepo.AssertNotCalled(t, "FindByID")
	})
}

func TestCommentService_DeleteComment(t *testing.T) {
	ctx := context.Background()
	commentID := uuid.Must(uuid.NewV4())
	ownerID := uuid.Must(uuid.NewV4())
	videoID := uuid.Must(uuid.NewV4())

	existing := func() *models.Comment {
		return &models.Comment{
			ID:          commentID,
			VideoID:     videoID,
			OwnerUserID: ownerID,
			Content:     "to be removed",
		}
	}

	t.Run("Owner deletes, deleted representation returned", func(t *testing.T) {
		mockRepo := new(MockCommentRepository)
		service := NewCommentService(mockRepo, nil)

		mockRepo.On("FindByID", mock.Anything, commentID).Return(existing(), nil)
		mockRepo.On("Delete", mock.Anything, commentID).Return(existing(), nil)

		comment, err := service.DeleteComment(ctx, commentID, ownerID)

		assert.NoError(t, err)
		assert.Equal(t, commentID, comment.ID)
		assert.Equal(t, "to be removed", comment.Content)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Non-owner forbidden", func(t *testing.T) {
		mockRepo := new(MockCommentRepository)
		service := NewCommentService(mockRepo, nil)

		stranger := uuid.Must(uuid.NewV4())
		mockRepo.On("FindByID", mock.Anything, commentID).Return(existing(), nil)

		comment, err := service.DeleteComment(ctx, commentID, stranger)

		assert.Error(t, err)
		assert.True(t, errors.Is(err, commentErrors.ErrCommentOwnershipRequired))
		assert.Nil(t, comment)
		mockRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("Missing comment", func(t *testing.T) {
		mockRepo := new(MockCommentRepository)
		service := NewCommentService(mockRepo, nil)

		mockRepo.On("FindByID", mock.Anything, commentID).Return(nil, commentErrors.ErrCommentNotFound)

		comment, err := service.DeleteComment(ctx, commentID, ownerID)

		assert.Error(t, err)
		assert.True(t, errors.Is(err, commentErrors.ErrCommentNotFound))
		assert.Nil(t, comment)
	})
}
