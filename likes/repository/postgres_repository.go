package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	uuid "github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/vidtube/api/internal/database/postgres"
	likeErrors "github.com/vidtube/api/likes/errors"
	"github.com/vidtube/api/likes/models"
)

type postgresLikeRepository struct {
	client *postgres.Client
}

// NewPostgresLikeRepository creates a PostgreSQL-backed like repository.
func NewPostgresLikeRepository(client *postgres.Client) LikeRepository {
	return &postgresLikeRepository{client: client}
}

// getExecutor returns the transaction from context if present, otherwise the pooled DB.
func (r *postgresLikeRepository) getExecutor(ctx context.Context) sqlx.ExtContext {
	if tx, ok := ctx.Value("tx").(*sqlx.Tx); ok {
		return tx
	}
	return r.client.DB()
}

func (r *postgresLikeRepository) Insert(ctx context.Context, like *models.Like) (bool, error) {
	if like.ID == uuid.Nil {
		id, err := uuid.NewV4()
		if err != nil {
			return false, fmt.Errorf("failed to generate like id: %w", err)
		}
		like.ID = id
	}
	if like.CreatedAt.IsZero() {
		like.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO likes (id, target_kind, target_id, liked_by, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (target_kind, target_id, liked_by) DO NOTHING`

	result, err := r.getExecutor(ctx).ExecContext(ctx, query,
		like.ID, like.TargetKind, like.TargetID, like.LikedBy, like.CreatedAt)
	if err != nil {
		// The only foreign key on likes is liked_by -> users; targets
		// are polymorphic and carry no constraint.
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return false, fmt.Errorf("%w: %v", likeErrors.ErrUserNotFound, err)
		}
		return false, fmt.Errorf("failed to insert like: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check insert result: %w", err)
	}
	return rows > 0, nil
}

func (r *postgresLikeRepository) Remove(ctx context.Context, kind models.TargetKind, targetID, likedBy uuid.UUID) (bool, error) {
	query := `
		DELETE FROM likes
		WHERE target_kind = $1 AND target_id = $2 AND liked_by = $3`

	result, err := r.getExecutor(ctx).ExecContext(ctx, query, kind, targetID, likedBy)
	if err != nil {
		return false, fmt.Errorf("failed to remove like: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check delete result: %w", err)
	}
	return rows > 0, nil
}

// likedVideoRow is the scan target for the liked-videos join.
type likedVideoRow struct {
	ID            uuid.UUID `db:"id"`
	VideoFile     string    `db:"video_file"`
	Thumbnail     string    `db:"thumbnail"`
	OwnerUserID   uuid.UUID `db:"owner_user_id"`
	Title         string    `db:"title"`
	Description   string    `db:"description"`
	Views         int64     `db:"views"`
	Duration      float64   `db:"duration"`
	CreatedAt     time.Time `db:"created_at"`
	IsPublished   bool      `db:"is_published"`
	OwnerUsername string    `db:"owner_username"`
	OwnerFullname string    `db:"owner_fullname"`
	OwnerAvatar   string    `db:"owner_avatar"`
}

func (r *postgresLikeRepository) FindLikedVideos(ctx context.Context, likedBy uuid.UUID) ([]models.LikedVideo, error) {
	query := `
		SELECT
			v.id, v.video_file, v.thumbnail, v.owner_user_id, v.title,
			v.description, v.views, v.duration, v.created_at, v.is_published,
			u.username AS owner_username,
			u.fullname AS owner_fullname,
			u.avatar AS owner_avatar
		FROM likes l
		JOIN videos v ON v.id = l.target_id
		JOIN users u ON u.id = v.owner_user_id
		WHERE l.target_kind = $1 AND l.liked_by = $2
		ORDER BY l.created_at DESC`

	var rows []likedVideoRow
	err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &rows, query, models.TargetVideo, likedBy)
	if err != nil {
		if err == sql.ErrNoRows {
			return []models.LikedVideo{}, nil
		}
		return nil, fmt.Errorf("failed to fetch liked videos: %w", err)
	}

	videos := make([]models.LikedVideo, 0, len(rows))
	for _, row := range rows {
		videos = append(videos, models.LikedVideo{
			ID:          row.ID,
			VideoFile:   row.VideoFile,
			Thumbnail:   row.Thumbnail,
			OwnerUserID: row.OwnerUserID,
			Title:       row.Title,
			Description: row.Description,
			Views:       row.Views,
			Duration:    row.Duration,
			CreatedAt:   row.CreatedAt,
			IsPublished: row.IsPublished,
			Owner: models.OwnerDetails{
				Username: row.OwnerUsername,
				Fullname: row.OwnerFullname,
				Avatar:   row.OwnerAvatar,
			},
		})
	}
	return videos, nil
}
