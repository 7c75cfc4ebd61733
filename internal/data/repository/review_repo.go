package repository

import (
	"context"
	"fmt"

	"github.com/Tastrnet/mainversion-sub000/internal/data/entity"
	"github.com/Tastrnet/mainversion-sub000/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// FindByRestaurantID returns public reviews, plus the viewer's own
	// private ones when viewerID is non-nil.
	FindByRestaurantID(ctx context.Context, restaurantID uuid.UUID, viewerID *uuid.UUID, limit, offset int) ([]*entity.Review, error)
	CountByRestaurantID(ctx context.Context, restaurantID uuid.UUID, viewerID *uuid.UUID) (int64, error)

	// FindByUserID skips private reviews unless includePrivate is set
	// (the owner browsing their own history).
	FindByUserID(ctx context.Context, userID uuid.UUID, includePrivate bool, limit, offset int) ([]*entity.Review, error)
	CountByUserID(ctx context.Context, userID uuid.UUID, includePrivate bool) (int64, error)

	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id uuid.UUID) error

	// GetRestaurantStats returns average overall rating and count over
	// public reviews only.
	GetRestaurantStats(ctx context.Context, restaurantID uuid.UUID) (float64, int64, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

const reviewColumns = `id, user_id, restaurant_id, food_rating, service_rating,
       atmosphere_rating, value_rating, overall_rating, comment, visit_date,
       is_public, photo_keys, created_at, updated_at`

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, restaurant_id, food_rating, service_rating,
		                    atmosphere_rating, value_rating, overall_rating, comment,
		                    visit_date, is_public, photo_keys, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.UserID,
		review.RestaurantID,
		review.FoodRating,
		review.ServiceRating,
		review.AtmosphereRating,
		review.ValueRating,
		review.OverallRating,
		review.Comment,
		review.VisitDate,
		review.IsPublic,
		review.PhotoKeys,
		review.CreatedAt,
		review.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", review.UserID.String()),
			zap.String("restaurant_id", review.RestaurantID.String()),
		)
		return fmt.Errorf("create review for restaurant %s by user %s: %w",
			review.RestaurantID.String(), review.UserID.String(), err)
	}

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE id = $1
	`

	var review entity.Review
	err := r.db.QueryRow(ctx, query, id).Scan(
		&review.ID,
		&review.UserID,
		&review.RestaurantID,
		&review.FoodRating,
		&review.ServiceRating,
		&review.AtmosphereRating,
		&review.ValueRating,
		&review.OverallRating,
		&review.Comment,
		&review.VisitDate,
		&review.IsPublic,
		&review.PhotoKeys,
		&review.CreatedAt,
		&review.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return nil, fmt.Errorf("find review by ID %s: %w", id.String(), err)
	}

	return &review, nil
}

func (r *reviewRepository) FindByRestaurantID(ctx context.Context, restaurantID uuid.UUID, viewerID *uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE restaurant_id = $1
		  AND (is_public = TRUE OR user_id = $2)
		ORDER BY visit_date DESC, created_at DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.Query(ctx, query, restaurantID, viewerID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find reviews by restaurant ID",
			zap.Error(err),
			zap.String("restaurant_id", restaurantID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find reviews by restaurant ID %s: %w", restaurantID.String(), err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

func (r *reviewRepository) CountByRestaurantID(ctx context.Context, restaurantID uuid.UUID, viewerID *uuid.UUID) (int64, error) {
	query := `
		SELECT COUNT(*) FROM reviews
		WHERE restaurant_id = $1 AND (is_public = TRUE OR user_id = $2)
	`

	var count int64
	if err := r.db.QueryRow(ctx, query, restaurantID, viewerID).Scan(&count); err != nil {
		r.log.Error("Failed to count reviews by restaurant ID",
			zap.Error(err),
			zap.String("restaurant_id", restaurantID.String()),
		)
		return 0, fmt.Errorf("count reviews by restaurant ID %s: %w", restaurantID.String(), err)
	}

	return count, nil
}

func (r *reviewRepository) FindByUserID(ctx context.Context, userID uuid.UUID, includePrivate bool, limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE user_id = $1 AND (is_public = TRUE OR $2)
		ORDER BY visit_date DESC, created_at DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.Query(ctx, query, userID, includePrivate, limit, offset)
	if err != nil {
		r.log.Error("Failed to find reviews by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find reviews by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

func (r *reviewRepository) CountByUserID(ctx context.Context, userID uuid.UUID, includePrivate bool) (int64, error) {
	query := `SELECT COUNT(*) FROM reviews WHERE user_id = $1 AND (is_public = TRUE OR $2)`

	var count int64
	if err := r.db.QueryRow(ctx, query, userID, includePrivate).Scan(&count); err != nil {
		r.log.Error("Failed to count reviews by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count reviews by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	query := `
		UPDATE reviews
		SET food_rating = $2, service_rating = $3, atmosphere_rating = $4,
		    value_rating = $5, overall_rating = $6, comment = $7,
		    visit_date = $8, is_public = $9, photo_keys = $10, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		review.ID,
		review.FoodRating,
		review.ServiceRating,
		review.AtmosphereRating,
		review.ValueRating,
		review.OverallRating,
		review.Comment,
		review.VisitDate,
		review.IsPublic,
		review.PhotoKeys,
	)

	if err != nil {
		r.log.Error("Failed to update review",
			zap.Error(err),
			zap.String("review_id", review.ID.String()),
		)
		return fmt.Errorf("update review %s: %w", review.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s not found", review.ID.String())
	}

	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reviews WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return fmt.Errorf("delete review %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s not found", id.String())
	}

	r.log.Info("Review deleted", zap.String("review_id", id.String()))
	return nil
}

func (r *reviewRepository) GetRestaurantStats(ctx context.Context, restaurantID uuid.UUID) (float64, int64, error) {
	query := `
		SELECT
			COALESCE(AVG(overall_rating), 0) as avg_rating,
			COUNT(*) as review_count
		FROM reviews
		WHERE restaurant_id = $1 AND is_public = TRUE
	`

	var avgRating float64
	var reviewCount int64
	err := r.db.QueryRow(ctx, query, restaurantID).Scan(&avgRating, &reviewCount)
	if err != nil {
		r.log.Error("Failed to get restaurant review stats",
			zap.Error(err),
			zap.String("restaurant_id", restaurantID.String()),
		)
		return 0, 0, fmt.Errorf("get review stats for restaurant %s: %w", restaurantID.String(), err)
	}

	return avgRating, reviewCount, nil
}

func (r *reviewRepository) scanRows(rows pgx.Rows) ([]*entity.Review, error) {
	var reviews []*entity.Review
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.RestaurantID,
			&review.FoodRating,
			&review.ServiceRating,
			&review.AtmosphereRating,
			&review.ValueRating,
			&review.OverallRating,
			&review.Comment,
			&review.VisitDate,
			&review.IsPublic,
			&review.PhotoKeys,
			&review.CreatedAt,
			&review.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, nil
}
