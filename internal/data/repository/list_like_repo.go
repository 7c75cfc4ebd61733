package repository

import (
	"context"
	"fmt"

	"github.com/Tastrnet/mainversion-sub000/internal/data/entity"
	"github.com/Tastrnet/mainversion-sub000/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ListLikeRepository interface {
	// Like inserts the like edge; a duplicate is a no-op. Returns whether a
	// row was actually inserted.
	Like(ctx context.Context, like *entity.ListLike) (bool, error)
	Unlike(ctx context.Context, listID, userID uuid.UUID) error
	CountByListID(ctx context.Context, listID uuid.UUID) (int64, error)
	Exists(ctx context.Context, listID, userID uuid.UUID) (bool, error)
}

type listLikeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewListLikeRepository(db database.PgxIface, log *zap.Logger) ListLikeRepository {
	return &listLikeRepository{
		db:  db,
		log: log.With(zap.String("repository", "list_like")),
	}
}

func (r *listLikeRepository) Like(ctx context.Context, like *entity.ListLike) (bool, error) {
	query := `
		INSERT INTO list_likes (id, list_id, user_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (list_id, user_id) DO NOTHING
	`

	result, err := r.db.Exec(ctx, query,
		like.ID,
		like.ListID,
		like.UserID,
		like.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to like list",
			zap.Error(err),
			zap.String("list_id", like.ListID.String()),
			zap.String("user_id", like.UserID.String()),
		)
		return false, fmt.Errorf("like list %s by user %s: %w",
			like.ListID.String(), like.UserID.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *listLikeRepository) Unlike(ctx context.Context, listID, userID uuid.UUID) error {
	query := `DELETE FROM list_likes WHERE list_id = $1 AND user_id = $2`

	_, err := r.db.Exec(ctx, query, listID, userID)
	if err != nil {
		r.log.Error("Failed to unlike list",
			zap.Error(err),
			zap.String("list_id", listID.String()),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("unlike list %s by user %s: %w", listID.String(), userID.String(), err)
	}

	return nil
}

func (r *listLikeRepository) CountByListID(ctx context.Context, listID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM list_likes WHERE list_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, listID).Scan(&count); err != nil {
		r.log.Error("Failed to count list likes",
			zap.Error(err),
			zap.String("list_id", listID.String()),
		)
		return 0, fmt.Errorf("count likes of list %s: %w", listID.String(), err)
	}

	return count, nil
}

func (r *listLikeRepository) Exists(ctx context.Context, listID, userID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM list_likes WHERE list_id = $1 AND user_id = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, listID, userID).Scan(&exists); err != nil {
		r.log.Error("Failed to check list like",
			zap.Error(err),
			zap.String("list_id", listID.String()),
			zap.String("user_id", userID.String()),
		)
		return false, fmt.Errorf("check like of list %s: %w", listID.String(), err)
	}

	return exists, nil
}
