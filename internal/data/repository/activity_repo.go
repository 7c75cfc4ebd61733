package repository

import (
	"context"
	"fmt"

	"github.com/Tastrnet/mainversion-sub000/internal/data/entity"
	"github.com/Tastrnet/mainversion-sub000/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.Activity) error

	// FindByUserIDs returns activities of the given users, newest first.
	FindByUserIDs(ctx context.Context, userIDs []uuid.UUID, limit, offset int) ([]*entity.Activity, error)
	CountByUserIDs(ctx context.Context, userIDs []uuid.UUID) (int64, error)

	// DeleteByReviewID removes activities referencing a deleted review.
	DeleteByReviewID(ctx context.Context, reviewID uuid.UUID) error
	// DeleteByListID removes activities referencing a deleted list.
	DeleteByListID(ctx context.Context, listID uuid.UUID) error
}

type activityRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewActivityRepository(db database.PgxIface, log *zap.Logger) ActivityRepository {
	return &activityRepository{
		db:  db,
		log: log.With(zap.String("repository", "activity")),
	}
}

func (r *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	query := `
		INSERT INTO activities (id, user_id, type, review_id, list_id,
		                       target_user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		activity.ID,
		activity.UserID,
		activity.Type,
		activity.ReviewID,
		activity.ListID,
		activity.TargetUserID,
		activity.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create activity",
			zap.Error(err),
			zap.String("user_id", activity.UserID.String()),
			zap.String("type", string(activity.Type)),
		)
		return fmt.Errorf("create %s activity for user %s: %w",
			activity.Type, activity.UserID.String(), err)
	}

	return nil
}

func (r *activityRepository) FindByUserIDs(ctx context.Context, userIDs []uuid.UUID, limit, offset int) ([]*entity.Activity, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, user_id, type, review_id, list_id, target_user_id, created_at
		FROM activities
		WHERE user_id = ANY($1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userIDs, limit, offset)
	if err != nil {
		r.log.Error("Failed to find activities",
			zap.Error(err),
			zap.Int("user_count", len(userIDs)),
		)
		return nil, fmt.Errorf("find activities of %d users: %w", len(userIDs), err)
	}
	defer rows.Close()

	var activities []*entity.Activity
	for rows.Next() {
		var activity entity.Activity
		err := rows.Scan(
			&activity.ID,
			&activity.UserID,
			&activity.Type,
			&activity.ReviewID,
			&activity.ListID,
			&activity.TargetUserID,
			&activity.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan activity row", zap.Error(err))
			return nil, fmt.Errorf("scan activity row: %w", err)
		}
		activities = append(activities, &activity)
	}

	return activities, nil
}

func (r *activityRepository) CountByUserIDs(ctx context.Context, userIDs []uuid.UUID) (int64, error) {
	if len(userIDs) == 0 {
		return 0, nil
	}

	query := `SELECT COUNT(*) FROM activities WHERE user_id = ANY($1)`

	var count int64
	if err := r.db.QueryRow(ctx, query, userIDs).Scan(&count); err != nil {
		r.log.Error("Failed to count activities", zap.Error(err))
		return 0, fmt.Errorf("count activities: %w", err)
	}

	return count, nil
}

func (r *activityRepository) DeleteByReviewID(ctx context.Context, reviewID uuid.UUID) error {
	query := `DELETE FROM activities WHERE review_id = $1`

	_, err := r.db.Exec(ctx, query, reviewID)
	if err != nil {
		r.log.Error("Failed to delete activities by review",
			zap.Error(err),
			zap.String("review_id", reviewID.String()),
		)
		return fmt.Errorf("delete activities of review %s: %w", reviewID.String(), err)
	}

	return nil
}

func (r *activityRepository) DeleteByListID(ctx context.Context, listID uuid.UUID) error {
	query := `DELETE FROM activities WHERE list_id = $1`

	_, err := r.db.Exec(ctx, query, listID)
	if err != nil {
		r.log.Error("Failed to delete activities by list",
			zap.Error(err),
			zap.String("list_id", listID.String()),
		)
		return fmt.Errorf("delete activities of list %s: %w", listID.String(), err)
	}

	return nil
}
