package repository

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/vidtube/api/comments/models"
)

// CommentRepository defines the data access contract for comments.
type CommentRepository interface {
	// Create inserts a new comment and fills in generated fields.
	Create(ctx context.Context, comment *models.Comment) error

	// FindByID returns the comment or ErrCommentNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*models.Comment, error)

	// FindEnrichedByVideoID returns one page of a video's comments
	// enriched with like counts, the viewer's like state, and owner
	// details, newest first. viewerID may be uuid.Nil for anonymous
	// viewers, in which case IsLiked is always false.
	FindEnrichedByVideoID(ctx context.Context, videoID, viewerID uuid.UUID, filter models.CommentQueryFilter) ([]models.EnrichedComment, error)

	// CountByVideoID returns the total number of comments on a video.
	CountByVideoID(ctx context.Context, videoID uuid.UUID) (int64, error)

	// UpdateContent replaces the comment's content and returns the
	// updated comment, or ErrCommentNotFound.
	UpdateContent(ctx context.Context, id uuid.UUID, content string) (*models.Comment, error)

	// Delete removes the comment permanently and returns the deleted
	// representation, or ErrCommentNotFound.
	Delete(ctx context.Context, id uuid.UUID) (*models.Comment, error)
}
