package repository

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/vidtube/api/likes/models"
)

// LikeRepository defines the data access contract for likes.
type LikeRepository interface {
	// Insert attempts to create a like row. Returns true when the row was
	// created, false when an identical like already existed.
	Insert(ctx context.Context, like *models.Like) (bool, error)

	// Remove deletes the like identified by (kind, targetID, likedBy).
	// Returns true when a row was deleted.
	Remove(ctx context.Context, kind models.TargetKind, targetID, likedBy uuid.UUID) (bool, error)

	// FindLikedVideos returns every video the user has liked, enriched
	// with owner details, most recently liked first.
	FindLikedVideos(ctx context.Context, likedBy uuid.UUID) ([]models.LikedVideo, error)
}
