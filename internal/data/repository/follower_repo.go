package repository

import (
	"context"
	"fmt"

	"github.com/Tastrnet/mainversion-sub000/internal/data/entity"
	"github.com/Tastrnet/mainversion-sub000/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FollowerRepository interface {
	// Follow inserts the edge; a duplicate is a no-op. Returns whether a
	// row was actually inserted.
	Follow(ctx context.Context, edge *entity.Follower) (bool, error)
	Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error
	IsFollowing(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)

	// FindFollowers returns the users following userID.
	FindFollowers(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.User, error)
	CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error)

	// FindFollowing returns the users userID follows.
	FindFollowing(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.User, error)
	CountFollowing(ctx context.Context, userID uuid.UUID) (int64, error)

	// FolloweeIDs returns the ids of everyone userID follows, for feed
	// queries.
	FolloweeIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type followerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFollowerRepository(db database.PgxIface, log *zap.Logger) FollowerRepository {
	return &followerRepository{
		db:  db,
		log: log.With(zap.String("repository", "follower")),
	}
}

func (r *followerRepository) Follow(ctx context.Context, edge *entity.Follower) (bool, error) {
	query := `
		INSERT INTO followers (id, follower_id, followee_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (follower_id, followee_id) DO NOTHING
	`

	result, err := r.db.Exec(ctx, query,
		edge.ID,
		edge.FollowerID,
		edge.FolloweeID,
		edge.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create follow edge",
			zap.Error(err),
			zap.String("follower_id", edge.FollowerID.String()),
			zap.String("followee_id", edge.FolloweeID.String()),
		)
		return false, fmt.Errorf("follow %s by %s: %w",
			edge.FolloweeID.String(), edge.FollowerID.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *followerRepository) Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	query := `DELETE FROM followers WHERE follower_id = $1 AND followee_id = $2`

	_, err := r.db.Exec(ctx, query, followerID, followeeID)
	if err != nil {
		r.log.Error("Failed to delete follow edge",
			zap.Error(err),
			zap.String("follower_id", followerID.String()),
			zap.String("followee_id", followeeID.String()),
		)
		return fmt.Errorf("unfollow %s by %s: %w", followeeID.String(), followerID.String(), err)
	}

	return nil
}

func (r *followerRepository) IsFollowing(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM followers WHERE follower_id = $1 AND followee_id = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, followerID, followeeID).Scan(&exists); err != nil {
		r.log.Error("Failed to check follow edge",
			zap.Error(err),
			zap.String("follower_id", followerID.String()),
			zap.String("followee_id", followeeID.String()),
		)
		return false, fmt.Errorf("check follow of %s by %s: %w",
			followeeID.String(), followerID.String(), err)
	}

	return exists, nil
}

const followedUserColumns = `u.id, u.username, u.email, u.password, u.avatar_key,
       u.bio, u.is_active, u.created_at, u.updated_at, u.deleted_at`

func (r *followerRepository) FindFollowers(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.User, error) {
	query := `
		SELECT ` + followedUserColumns + `
		FROM followers f
		JOIN profiles u ON u.id = f.follower_id
		WHERE f.followee_id = $1 AND u.deleted_at IS NULL
		ORDER BY f.created_at DESC
		LIMIT $2 OFFSET $3
	`

	return r.queryUsers(ctx, query, userID, limit, offset)
}

func (r *followerRepository) CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM followers WHERE followee_id = $1`
	return r.countEdges(ctx, query, userID)
}

func (r *followerRepository) FindFollowing(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.User, error) {
	query := `
		SELECT ` + followedUserColumns + `
		FROM followers f
		JOIN profiles u ON u.id = f.followee_id
		WHERE f.follower_id = $1 AND u.deleted_at IS NULL
		ORDER BY f.created_at DESC
		LIMIT $2 OFFSET $3
	`

	return r.queryUsers(ctx, query, userID, limit, offset)
}

func (r *followerRepository) CountFollowing(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM followers WHERE follower_id = $1`
	return r.countEdges(ctx, query, userID)
}

func (r *followerRepository) FolloweeIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query := `SELECT followee_id FROM followers WHERE follower_id = $1`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to load followee IDs",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("load followee IDs of %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			r.log.Error("Failed to scan followee ID", zap.Error(err))
			return nil, fmt.Errorf("scan followee ID: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func (r *followerRepository) queryUsers(ctx context.Context, query string, userID uuid.UUID, limit, offset int) ([]*entity.User, error) {
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to query follow users",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("query follow users of %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		var user entity.User
		err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.PasswordHash,
			&user.AvatarKey,
			&user.Bio,
			&user.IsActive,
			&user.CreatedAt,
			&user.UpdatedAt,
			&user.DeletedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan follow user row", zap.Error(err))
			return nil, fmt.Errorf("scan follow user row: %w", err)
		}
		users = append(users, &user)
	}

	return users, nil
}

func (r *followerRepository) countEdges(ctx context.Context, query string, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		r.log.Error("Failed to count follow edges",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count follow edges of %s: %w", userID.String(), err)
	}

	return count, nil
}
