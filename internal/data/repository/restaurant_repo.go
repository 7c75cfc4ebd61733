package repository

import (
	"context"
	"fmt"

	"github.com/Tastrnet/mainversion-sub000/internal/data/entity"
	"github.com/Tastrnet/mainversion-sub000/pkg/database"
	"github.com/Tastrnet/mainversion-sub000/pkg/geo"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// NearbyRow is one result of the nearest-restaurants SQL function, carrying
// the server-computed distance.
type NearbyRow struct {
	Restaurant     entity.Restaurant
	DistanceMeters float64
}

type RestaurantRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)

	// FindNearby calls the nearby_restaurants SQL function (the geospatial
	// RPC). cuisines restricts results to restaurants whose cuisine array
	// overlaps the given names; empty means no filter.
	FindNearby(ctx context.Context, lat, lng, radiusMeters float64, limit int, cuisines []string) ([]*NearbyRow, error)

	// FindInBoundingBox is the plain lat/lng range query used as fallback
	// and augmentation for FindNearby.
	FindInBoundingBox(ctx context.Context, box geo.BoundingBox, limit int) ([]*entity.Restaurant, error)

	FindPopular(ctx context.Context, cuisines []string, limit, offset int) ([]*entity.Restaurant, error)
	CountPopular(ctx context.Context, cuisines []string) (int64, error)
	FindFeatured(ctx context.Context, limit, offset int) ([]*entity.Restaurant, error)
	CountFeatured(ctx context.Context) (int64, error)
	SearchByName(ctx context.Context, query string, limit, offset int) ([]*entity.Restaurant, error)
	CountByName(ctx context.Context, query string) (int64, error)

	UpdateRating(ctx context.Context, id uuid.UUID, rating float64, reviewCount int64) error

	// RefreshAllRatings recomputes every restaurant's rating rollup from its
	// public reviews in one statement. Returns the number of rows touched.
	RefreshAllRatings(ctx context.Context) (int64, error)
}

type restaurantRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRestaurantRepository(db database.PgxIface, log *zap.Logger) RestaurantRepository {
	return &restaurantRepository{
		db:  db,
		log: log.With(zap.String("repository", "restaurant")),
	}
}

const restaurantColumns = `id, name, address, latitude, longitude, cuisines,
       featured, rating, review_count, created_at, updated_at, deleted_at`

func (r *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	query := `
		SELECT ` + restaurantColumns + `
		FROM restaurants
		WHERE id = $1 AND deleted_at IS NULL
	`

	var restaurant entity.Restaurant
	err := r.db.QueryRow(ctx, query, id).Scan(
		&restaurant.ID,
		&restaurant.Name,
		&restaurant.Address,
		&restaurant.Latitude,
		&restaurant.Longitude,
		&restaurant.Cuisines,
		&restaurant.Featured,
		&restaurant.Rating,
		&restaurant.ReviewCount,
		&restaurant.CreatedAt,
		&restaurant.UpdatedAt,
		&restaurant.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find restaurant by ID",
			zap.Error(err),
			zap.String("restaurant_id", id.String()),
		)
		return nil, fmt.Errorf("find restaurant by ID %s: %w", id.String(), err)
	}

	return &restaurant, nil
}

func (r *restaurantRepository) FindNearby(ctx context.Context, lat, lng, radiusMeters float64, limit int, cuisines []string) ([]*NearbyRow, error) {
	query := `
		SELECT id, name, address, latitude, longitude, cuisines,
		       featured, rating, review_count, created_at, updated_at,
		       dist_meters
		FROM nearby_restaurants($1, $2, $3, $4, $5)
	`

	rows, err := r.db.Query(ctx, query, lat, lng, radiusMeters, limit, cuisines)
	if err != nil {
		r.log.Error("Failed to call nearby_restaurants",
			zap.Error(err),
			zap.Float64("lat", lat),
			zap.Float64("lng", lng),
			zap.Float64("radius_m", radiusMeters),
		)
		return nil, fmt.Errorf("nearby_restaurants(%f, %f, %f): %w", lat, lng, radiusMeters, err)
	}
	defer rows.Close()

	var results []*NearbyRow
	for rows.Next() {
		var row NearbyRow
		err := rows.Scan(
			&row.Restaurant.ID,
			&row.Restaurant.Name,
			&row.Restaurant.Address,
			&row.Restaurant.Latitude,
			&row.Restaurant.Longitude,
			&row.Restaurant.Cuisines,
			&row.Restaurant.Featured,
			&row.Restaurant.Rating,
			&row.Restaurant.ReviewCount,
			&row.Restaurant.CreatedAt,
			&row.Restaurant.UpdatedAt,
			&row.DistanceMeters,
		)
		if err != nil {
			r.log.Error("Failed to scan nearby row", zap.Error(err))
			return nil, fmt.Errorf("scan nearby row: %w", err)
		}
		results = append(results, &row)
	}

	return results, nil
}

func (r *restaurantRepository) FindInBoundingBox(ctx context.Context, box geo.BoundingBox, limit int) ([]*entity.Restaurant, error) {
	query := `
		SELECT ` + restaurantColumns + `
		FROM restaurants
		WHERE deleted_at IS NULL
		  AND latitude  BETWEEN $1 AND $2
		  AND longitude BETWEEN $3 AND $4
		LIMIT $5
	`

	rows, err := r.db.Query(ctx, query, box.MinLat, box.MaxLat, box.MinLng, box.MaxLng, limit)
	if err != nil {
		r.log.Error("Failed to query bounding box",
			zap.Error(err),
			zap.Float64("min_lat", box.MinLat),
			zap.Float64("max_lat", box.MaxLat),
		)
		return nil, fmt.Errorf("bounding box query: %w", err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

func (r *restaurantRepository) FindPopular(ctx context.Context, cuisines []string, limit, offset int) ([]*entity.Restaurant, error) {
	query := `
		SELECT ` + restaurantColumns + `
		FROM restaurants
		WHERE deleted_at IS NULL
		  AND ($1::text[] IS NULL OR EXISTS (
		       SELECT 1 FROM unnest(cuisines) c WHERE LOWER(c) = ANY($1)))
		ORDER BY review_count DESC, rating DESC, name ASC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, nullableArray(cuisines), limit, offset)
	if err != nil {
		r.log.Error("Failed to find popular restaurants",
			zap.Error(err),
			zap.Strings("cuisines", cuisines),
		)
		return nil, fmt.Errorf("find popular restaurants: %w", err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

func (r *restaurantRepository) CountPopular(ctx context.Context, cuisines []string) (int64, error) {
	query := `
		SELECT COUNT(*) FROM restaurants
		WHERE deleted_at IS NULL
		  AND ($1::text[] IS NULL OR EXISTS (
		       SELECT 1 FROM unnest(cuisines) c WHERE LOWER(c) = ANY($1)))
	`

	var count int64
	if err := r.db.QueryRow(ctx, query, nullableArray(cuisines)).Scan(&count); err != nil {
		r.log.Error("Failed to count restaurants", zap.Error(err))
		return 0, fmt.Errorf("count restaurants: %w", err)
	}

	return count, nil
}

func (r *restaurantRepository) FindFeatured(ctx context.Context, limit, offset int) ([]*entity.Restaurant, error) {
	query := `
		SELECT ` + restaurantColumns + `
		FROM restaurants
		WHERE deleted_at IS NULL AND featured = TRUE
		ORDER BY review_count DESC, rating DESC, name ASC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find featured restaurants", zap.Error(err))
		return nil, fmt.Errorf("find featured restaurants: %w", err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

func (r *restaurantRepository) CountFeatured(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM restaurants WHERE deleted_at IS NULL AND featured = TRUE`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count featured restaurants", zap.Error(err))
		return 0, fmt.Errorf("count featured restaurants: %w", err)
	}

	return count, nil
}

func (r *restaurantRepository) SearchByName(ctx context.Context, query string, limit, offset int) ([]*entity.Restaurant, error) {
	sql := `
		SELECT ` + restaurantColumns + `
		FROM restaurants
		WHERE deleted_at IS NULL AND name ILIKE '%' || $1 || '%'
		ORDER BY review_count DESC, rating DESC, name ASC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, sql, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to search restaurants",
			zap.Error(err),
			zap.String("query", query),
		)
		return nil, fmt.Errorf("search restaurants %q: %w", query, err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

func (r *restaurantRepository) CountByName(ctx context.Context, query string) (int64, error) {
	sql := `
		SELECT COUNT(*) FROM restaurants
		WHERE deleted_at IS NULL AND name ILIKE '%' || $1 || '%'
	`

	var count int64
	if err := r.db.QueryRow(ctx, sql, query).Scan(&count); err != nil {
		r.log.Error("Failed to count search results", zap.Error(err), zap.String("query", query))
		return 0, fmt.Errorf("count search results %q: %w", query, err)
	}

	return count, nil
}

func (r *restaurantRepository) UpdateRating(ctx context.Context, id uuid.UUID, rating float64, reviewCount int64) error {
	query := `
		UPDATE restaurants
		SET rating = $2, review_count = $3, updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.db.Exec(ctx, query, id, rating, reviewCount)
	if err != nil {
		r.log.Error("Failed to update restaurant rating",
			zap.Error(err),
			zap.String("restaurant_id", id.String()),
		)
		return fmt.Errorf("update rating for restaurant %s: %w", id.String(), err)
	}

	return nil
}

func (r *restaurantRepository) RefreshAllRatings(ctx context.Context) (int64, error) {
	// LEFT JOIN so restaurants whose last public review disappeared get
	// their rollup reset to zero instead of keeping a stale value.
	query := `
		UPDATE restaurants r
		SET rating = COALESCE(s.avg_rating, 0),
		    review_count = COALESCE(s.review_count, 0),
		    updated_at = NOW()
		FROM restaurants r2
		LEFT JOIN (
			SELECT restaurant_id,
			       AVG(overall_rating) AS avg_rating,
			       COUNT(*) AS review_count
			FROM reviews
			WHERE is_public = TRUE
			GROUP BY restaurant_id
		) s ON s.restaurant_id = r2.id
		WHERE r.id = r2.id
		  AND (r.rating IS DISTINCT FROM COALESCE(s.avg_rating, 0)
		       OR r.review_count IS DISTINCT FROM COALESCE(s.review_count, 0))
	`

	result, err := r.db.Exec(ctx, query)
	if err != nil {
		r.log.Error("Failed to refresh restaurant ratings", zap.Error(err))
		return 0, fmt.Errorf("refresh restaurant ratings: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *restaurantRepository) scanRows(rows pgx.Rows) ([]*entity.Restaurant, error) {
	var restaurants []*entity.Restaurant
	for rows.Next() {
		var restaurant entity.Restaurant
		err := rows.Scan(
			&restaurant.ID,
			&restaurant.Name,
			&restaurant.Address,
			&restaurant.Latitude,
			&restaurant.Longitude,
			&restaurant.Cuisines,
			&restaurant.Featured,
			&restaurant.Rating,
			&restaurant.ReviewCount,
			&restaurant.CreatedAt,
			&restaurant.UpdatedAt,
			&restaurant.DeletedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan restaurant row", zap.Error(err))
			return nil, fmt.Errorf("scan restaurant row: %w", err)
		}
		restaurants = append(restaurants, &restaurant)
	}

	return restaurants, nil
}

// nullableArray maps an empty slice to NULL so "no filter" short-circuits
// in SQL instead of matching nothing.
func nullableArray(values []string) any {
	if len(values) == 0 {
		return nil
	}
	return values
}
