package models

import (
	"time"

	uuid "github.com/gofrs/uuid"
)

// Comment represents a comment on a video.
// VideoID and OwnerUserID are immutable after creation.
type Comment struct {
	ID          uuid.UUID `db:"id" json:"id"`
	VideoID     uuid.UUID `db:"video_id" json:"videoId"`
	OwnerUserID uuid.UUID `db:"owner_user_id" json:"owner"`
	Content     string    `db:"content" json:"content"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// AddCommentRequest is the request body for creating a comment.
type AddCommentRequest struct {
	Content string `json:"content"`
}

// UpdateCommentRequest is the request body for updating a comment.
type UpdateCommentRequest struct {
	Content string `json:"content"`
}

// OwnerDetails is the owner projection joined onto listed comments.
type OwnerDetails struct {
	Username string `json:"username"`
	Fullname string `json:"fullname"`
	Avatar   string `json:"avatar"`
}

// EnrichedComment is one row of the comment listing: the comment plus
// its like count, the viewer's like state, and the owner's details.
type EnrichedComment struct {
	ID         uuid.UUID    `json:"id"`
	Content    string       `json:"content"`
	CreatedAt  time.Time    `json:"createdAt"`
	LikesCount int64        `json:"likesCount"`
	IsLiked    bool         `json:"isLiked"`
	Owner      OwnerDetails `json:"ownerDetails"`
}

// CommentsListResponse is the paginated comment listing payload.
type CommentsListResponse struct {
	Comments   []EnrichedComment `json:"comments"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"totalPages"`
	HasNext    bool              `json:"hasNext"`
}

// CommentQueryFilter carries pagination parameters for comment listings.
type CommentQueryFilter struct {
	Page  int
	Limit int
}

// Offset returns the row offset implied by the filter.
func (f CommentQueryFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
