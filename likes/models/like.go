package models

import (
	"time"

	uuid "github.com/gofrs/uuid"
)

// TargetKind identifies which entity type a like points at. A like row
// references exactly one target, made structural by the (kind, id) pair.
type TargetKind string

// Likeable target kinds
const (
	TargetVideo   TargetKind = "video"
	TargetComment TargetKind = "comment"
	TargetTweet   TargetKind = "tweet"
)

// IsValid checks whether the target kind is one of the known kinds.
func (k TargetKind) IsValid() bool {
	return k == TargetVideo || k == TargetComment || k == TargetTweet
}

// Like represents a user's like on a video, comment, or tweet.
// Presence of a row means liked; there is no stored boolean flag.
type Like struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	TargetKind TargetKind `db:"target_kind" json:"targetKind"`
	TargetID   uuid.UUID  `db:"target_id" json:"targetId"`
	LikedBy    uuid.UUID  `db:"liked_by" json:"likedBy"`
	CreatedAt  time.Time  `db:"created_at" json:"createdAt"`
}

// ToggleResponse is the payload returned by all toggle operations.
type ToggleResponse struct {
	IsLiked bool `json:"isLiked"`
}

// OwnerDetails is the owner projection joined onto liked videos.
type OwnerDetails struct {
	Username string `json:"username"`
	Fullname string `json:"fullname"`
	Avatar   string `json:"avatar"`
}

// LikedVideo is one row of the liked-videos listing: the full video
// record enriched with its owner's details.
type LikedVideo struct {
	ID          uuid.UUID    `json:"id"`
	VideoFile   string       `json:"videoFile"`
	Thumbnail   string       `json:"thumbnail"`
	OwnerUserID uuid.UUID    `json:"owner"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Views       int64        `json:"views"`
	Duration    float64      `json:"duration"`
	CreatedAt   time.Time    `json:"createdAt"`
	IsPublished bool         `json:"isPublished"`
	Owner       OwnerDetails `json:"ownerDetails"`
}
