package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	uuid "github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	commentErrors "github.com/vidtube/api/comments/errors"
	"github.com/vidtube/api/comments/models"
	"github.com/vidtube/api/internal/database/postgres"
)

type postgresCommentRepository struct {
	client *postgres.Client
}

// NewPostgresCommentRepository creates a PostgreSQL-backed comment repository.
func NewPostgresCommentRepository(client *postgres.Client) CommentRepository {
	return &postgresCommentRepository{client: client}
}

// getExecutor returns the transaction from context if present, otherwise the pooled DB.
func (r *postgresCommentRepository) getExecutor(ctx context.Context) sqlx.ExtContext {
	if tx, ok := ctx.Value("tx").(*sqlx.Tx); ok {
		return tx
	}
	return r.client.DB()
}

func (r *postgresCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if comment.ID == uuid.Nil {
		id, err := uuid.NewV4()
		if err != nil {
			return fmt.Errorf("failed to generate comment id: %w", err)
		}
		comment.ID = id
	}
	now := time.Now()
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = now
	}
	comment.UpdatedAt = now

	query := `
		INSERT INTO comments (id, video_id, owner_user_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.getExecutor(ctx).ExecContext(ctx, query,
		comment.ID, comment.VideoID, comment.OwnerUserID, comment.Content,
		comment.CreatedAt, comment.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			switch pqErr.Constraint {
			case "comments_video_id_fkey":
				return commentErrors.ErrVideoNotFound
			case "comments_owner_user_id_fkey":
				return commentErrors.ErrUserNotFound
			}
			return fmt.Errorf("referenced entity does not exist: %w", err)
		}
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *postgresCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	query := `
		SELECT id, video_id, owner_user_id, content, created_at, updated_at
		FROM comments
		WHERE id = $1`

	var comment models.Comment
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &comment, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, commentErrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}
	return &comment, nil
}

// enrichedCommentRow is the scan target for the enriched listing query.
type enrichedCommentRow struct {
	ID            uuid.UUID `db:"id"`
	Content       string    `db:"content"`
	CreatedAt     time.Time `db:"created_at"`
	LikesCount    int64     `db:"likes_count"`
	IsLiked       bool      `db:"is_liked"`
	OwnerUsername string    `db:"owner_username"`
	OwnerFullname string    `db:"owner_fullname"`
	OwnerAvatar   string    `db:"owner_avatar"`
}

func (r *postgresCommentRepository) FindEnrichedByVideoID(ctx context.Context, videoID, viewerID uuid.UUID, filter models.CommentQueryFilter) ([]models.EnrichedComment, error) {
	query := `
		SELECT
			c.id, c.content, c.created_at,
			COUNT(l.id) AS likes_count,
			COALESCE(BOOL_OR(l.liked_by = $2), FALSE) AS is_liked,
			u.username AS owner_username,
			u.fullname AS owner_fullname,
			u.avatar AS owner_avatar
		FROM comments c
		JOIN users u ON u.id = c.owner_user_id
		LEFT JOIN likes l ON l.target_kind = 'comment' AND l.target_id = c.id
		WHERE c.video_id = $1
		GROUP BY c.id, c.content, c.created_at, u.username, u.fullname, u.avatar
		ORDER BY c.created_at DESC
		LIMIT $3 OFFSET $4`

	var rows []enrichedCommentRow
	err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &rows, query,
		videoID, viewerID, filter.Limit, filter.Offset())
	if err != nil {
		if err == sql.ErrNoRows {
			return []models.EnrichedComment{}, nil
		}
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}

	comments := make([]models.EnrichedComment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, models.EnrichedComment{
			ID:         row.ID,
			Content:    row.Content,
			CreatedAt:  row.CreatedAt,
			LikesCount: row.LikesCount,
			IsLiked:    row.IsLiked,
			Owner: models.OwnerDetails{
				Username: row.OwnerUsername,
				Fullname: row.OwnerFullname,
				Avatar:   row.OwnerAvatar,
			},
		})
	}
	return comments, nil
}

func (r *postgresCommentRepository) CountByVideoID(ctx context.Context, videoID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM comments WHERE video_id = $1`

	var count int64
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &count, query, videoID)
	if err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	return count, nil
}

func (r *postgresCommentRepository) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*models.Comment, error) {
	query := `
		UPDATE comments
		SET content = $2, updated_at = $3
		WHERE id = $1
		RETURNING id, video_id, owner_user_id, content, created_at, updated_at`

	var comment models.Comment
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &comment, query, id, content, time.Now())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, commentErrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	return &comment, nil
}

func (r *postgresCommentRepository) Delete(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	query := `
		DELETE FROM comments
		WHERE id = $1
		RETURNING id, video_id, owner_user_id, content, created_at, updated_at`

	var comment models.Comment
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &comment, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, commentErrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to delete comment: %w", err)
	}
	return &comment, nil
}
