package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/Tastrnet/mainversion-sub000/internal/data/entity"
	"github.com/Tastrnet/mainversion-sub000/internal/data/repository"
	"github.com/Tastrnet/mainversion-sub000/internal/dto/request"
	"github.com/Tastrnet/mainversion-sub000/internal/dto/response"
	"github.com/Tastrnet/mainversion-sub000/pkg/cache"
	"github.com/Tastrnet/mainversion-sub000/pkg/storage"
	"github.com/Tastrnet/mainversion-sub000/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	CreateReview(ctx context.Context, userID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error)

	// GetRestaurantReviews returns public reviews plus the viewer's own
	// private ones. viewerID is empty for anonymous requests.
	GetRestaurantReviews(ctx context.Context, restaurantID, viewerID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	// GetUserReviews lists a user's reviews; private ones only when the
	// viewer is the user themselves.
	GetUserReviews(ctx context.Context, userID, viewerID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	UpdateReview(ctx context.Context, reviewID, userID string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, reviewID, userID string) error

	GetRestaurantStats(ctx context.Context, restaurantID string) (*response.RestaurantStats, error)
}

type reviewService struct {
	repo  *repository.Repository
	cache *cache.Cache
	media MediaStore
	log   *zap.Logger
}

func NewReviewService(repo *repository.Repository, cache *cache.Cache, media MediaStore, log *zap.Logger) ReviewService {
	return &reviewService{
		repo:  repo,
		cache: cache,
		media: media,
		log:   log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, userID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	restaurantID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("invalid restaurant ID format %s: %w", req.RestaurantID, err)
	}

	restaurant, err := s.repo.Restaurant.FindByID(ctx, restaurantID)
	if err != nil || restaurant == nil {
		return nil, fmt.Errorf("restaurant %s not found", req.RestaurantID)
	}

	overall, err := computeOverall(req.FoodRating, req.ServiceRating, req.AtmosphereRating, req.ValueRating)
	if err != nil {
		return nil, err
	}

	visitDate, err := parseVisitDate(req.VisitDate)
	if err != nil {
		return nil, err
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	now := time.Now()
	review := &entity.Review{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:           userUUID,
		RestaurantID:     restaurantID,
		FoodRating:       req.FoodRating,
		ServiceRating:    req.ServiceRating,
		AtmosphereRating: req.AtmosphereRating,
		ValueRating:      req.ValueRating,
		OverallRating:    overall,
		Comment:          req.Comment,
		VisitDate:        visitDate,
		IsPublic:         isPublic,
		PhotoKeys:        req.PhotoKeys,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("restaurant_id", req.RestaurantID),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.afterReviewChange(ctx, restaurantID)

	// Activity record is best effort
	if isPublic {
		s.recordActivity(ctx, &entity.Activity{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
			UserID:     userUUID,
			Type:       entity.ActivityReviewCreated,
			ReviewID:   &review.ID,
		})
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("user_id", userID),
		zap.String("restaurant_id", req.RestaurantID),
		zap.Float64("overall", overall),
	)

	return s.buildReviewResponse(ctx, review), nil
}

func (s *reviewService) GetRestaurantReviews(ctx context.Context, restaurantID, viewerID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("invalid restaurant ID format %s: %w", restaurantID, err)
	}

	var viewer *uuid.UUID
	if viewerID != "" {
		id, err := uuid.Parse(viewerID)
		if err == nil {
			viewer = &id
		}
	}

	reviews, err := s.repo.Review.FindByRestaurantID(ctx, restaurantUUID, viewer, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get restaurant reviews",
			zap.Error(err),
			zap.String("restaurant_id", restaurantID),
		)
		return nil, fmt.Errorf("get restaurant reviews: %w", err)
	}

	total, err := s.repo.Review.CountByRestaurantID(ctx, restaurantUUID, viewer)
	if err != nil {
		s.log.Error("Failed to count restaurant reviews", zap.Error(err))
		return nil, fmt.Errorf("count restaurant reviews: %w", err)
	}

	restaurant, _ := s.repo.Restaurant.FindByID(ctx, restaurantUUID)
	restaurantName := ""
	if restaurant != nil {
		restaurantName = restaurant.Name
	}

	results := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		user, _ := s.repo.User.FindByID(ctx, review.UserID)
		username := ""
		if user != nil {
			username = user.Username
		}
		results[i] = response.ReviewToResponse(review, username, restaurantName, s.photoURLs(review))
	}

	return response.NewPaginatedResponse(results, req.Page, req.PerPage, total), nil
}

func (s *reviewService) GetUserReviews(ctx context.Context, userID, viewerID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	includePrivate := viewerID == userID
	reviews, err := s.repo.Review.FindByUserID(ctx, userUUID, includePrivate, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get user reviews",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("get user reviews: %w", err)
	}

	total, err := s.repo.Review.CountByUserID(ctx, userUUID, includePrivate)
	if err != nil {
		s.log.Error("Failed to count user reviews", zap.Error(err))
		return nil, fmt.Errorf("count user reviews: %w", err)
	}

	user, _ := s.repo.User.FindByID(ctx, userUUID)
	username := ""
	if user != nil {
		username = user.Username
	}

	results := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		restaurant, _ := s.repo.Restaurant.FindByID(ctx, review.RestaurantID)
		restaurantName := ""
		if restaurant != nil {
			restaurantName = restaurant.Name
		}
		results[i] = response.ReviewToResponse(review, username, restaurantName, s.photoURLs(review))
	}

	return response.NewPaginatedResponse(results, req.Page, req.PerPage, total), nil
}

func (s *reviewService) UpdateReview(ctx context.Context, reviewID, userID string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	reviewUUID, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, fmt.Errorf("invalid review ID format %s: %w", reviewID, err)
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	review, err := s.repo.Review.FindByID(ctx, reviewUUID)
	if err != nil || review == nil {
		return nil, fmt.Errorf("review %s not found", reviewID)
	}

	if review.UserID != userUUID {
		return nil, fmt.Errorf("unauthorized to update this review")
	}

	if req.FoodRating != nil {
		review.FoodRating = req.FoodRating
	}
	if req.ServiceRating != nil {
		review.ServiceRating = req.ServiceRating
	}
	if req.AtmosphereRating != nil {
		review.AtmosphereRating = req.AtmosphereRating
	}
	if req.ValueRating != nil {
		review.ValueRating = req.ValueRating
	}
	if req.Comment != nil {
		review.Comment = req.Comment
	}
	if req.VisitDate != nil {
		visitDate, err := parseVisitDate(*req.VisitDate)
		if err != nil {
			return nil, err
		}
		review.VisitDate = visitDate
	}
	if req.IsPublic != nil {
		review.IsPublic = *req.IsPublic
	}
	if req.PhotoKeys != nil {
		review.PhotoKeys = req.PhotoKeys
	}

	overall, err := computeOverall(review.FoodRating, review.ServiceRating,
		review.AtmosphereRating, review.ValueRating)
	if err != nil {
		return nil, err
	}
	review.OverallRating = overall

	if err := s.repo.Review.Update(ctx, review); err != nil {
		s.log.Error("Failed to update review",
			zap.Error(err),
			zap.String("review_id", reviewID),
		)
		return nil, fmt.Errorf("update review: %w", err)
	}

	s.afterReviewChange(ctx, review.RestaurantID)

	s.log.Info("Review updated",
		zap.String("review_id", reviewID),
		zap.String("user_id", userID),
	)

	return s.buildReviewResponse(ctx, review), nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID, userID string) error {
	reviewUUID, err := uuid.Parse(reviewID)
	if err != nil {
		return fmt.Errorf("invalid review ID format %s: %w", reviewID, err)
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	review, err := s.repo.Review.FindByID(ctx, reviewUUID)
	if err != nil || review == nil {
		return fmt.Errorf("review %s not found", reviewID)
	}

	if review.UserID != userUUID {
		return fmt.Errorf("unauthorized to delete this review")
	}

	if err := s.repo.Review.Delete(ctx, reviewUUID); err != nil {
		s.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", reviewID),
		)
		return fmt.Errorf("delete review: %w", err)
	}

	// Feed entries pointing at the review are now dangling
	if err := s.repo.Activity.DeleteByReviewID(ctx, reviewUUID); err != nil {
		s.log.Warn("Failed to delete review activities",
			zap.Error(err),
			zap.String("review_id", reviewID),
		)
	}

	for _, key := range review.PhotoKeys {
		if err := s.media.DeleteObject(storage.BucketPhotos, key); err != nil {
			s.log.Warn("Failed to delete review photo",
				zap.Error(err),
				zap.String("review_id", reviewID),
				zap.String("key", key),
			)
		}
	}

	s.afterReviewChange(ctx, review.RestaurantID)

	s.log.Info("Review deleted",
		zap.String("review_id", reviewID),
		zap.String("user_id", userID),
		zap.String("restaurant_id", review.RestaurantID.String()),
	)

	return nil
}

func (s *reviewService) GetRestaurantStats(ctx context.Context, restaurantID string) (*response.RestaurantStats, error) {
	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("invalid restaurant ID format %s: %w", restaurantID, err)
	}

	cacheKey := statsCacheKey(restaurantUUID)

	var cached response.RestaurantStats
	if s.cache.GetJSON(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	avgRating, reviewCount, err := s.repo.Review.GetRestaurantStats(ctx, restaurantUUID)
	if err != nil {
		s.log.Error("Failed to get restaurant stats",
			zap.Error(err),
			zap.String("restaurant_id", restaurantID),
		)
		return nil, fmt.Errorf("get restaurant stats: %w", err)
	}

	stats := &response.RestaurantStats{
		AverageRating: avgRating,
		ReviewCount:   reviewCount,
	}

	s.cache.SetJSON(ctx, cacheKey, stats)

	return stats, nil
}

// ==================== HELPER METHODS ====================

// afterReviewChange refreshes the denormalized restaurant rating and drops
// the cached stats. Both are best effort.
func (s *reviewService) afterReviewChange(ctx context.Context, restaurantID uuid.UUID) {
	avgRating, reviewCount, err := s.repo.Review.GetRestaurantStats(ctx, restaurantID)
	if err == nil {
		err = s.repo.Restaurant.UpdateRating(ctx, restaurantID, avgRating, reviewCount)
	}
	if err != nil {
		s.log.Warn("Failed to refresh restaurant rating",
			zap.Error(err),
			zap.String("restaurant_id", restaurantID.String()),
		)
	}

	s.cache.Invalidate(ctx, statsCacheKey(restaurantID))
}

func (s *reviewService) recordActivity(ctx context.Context, activity *entity.Activity) {
	if err := s.repo.Activity.Create(ctx, activity); err != nil {
		s.log.Warn("Failed to record activity",
			zap.Error(err),
			zap.String("type", string(activity.Type)),
		)
	}
}

func (s *reviewService) photoURLs(review *entity.Review) []string {
	if len(review.PhotoKeys) == 0 {
		return nil
	}

	urls := make([]string, 0, len(review.PhotoKeys))
	for _, key := range review.PhotoKeys {
		url, err := s.media.PresignDownload(storage.BucketPhotos, key)
		if err != nil {
			s.log.Warn("Failed to presign review photo", zap.Error(err), zap.String("key", key))
			continue
		}
		urls = append(urls, url)
	}

	return urls
}

func (s *reviewService) buildReviewResponse(ctx context.Context, review *entity.Review) *response.ReviewResponse {
	user, _ := s.repo.User.FindByID(ctx, review.UserID)
	username := ""
	if user != nil {
		username = user.Username
	}

	restaurant, _ := s.repo.Restaurant.FindByID(ctx, review.RestaurantID)
	restaurantName := ""
	if restaurant != nil {
		restaurantName = restaurant.Name
	}

	resp := response.ReviewToResponse(review, username, restaurantName, s.photoURLs(review))
	return &resp
}

func statsCacheKey(restaurantID uuid.UUID) string {
	return "stats:" + restaurantID.String()
}

// computeOverall is the mean of the provided sub-ratings, rounded to one
// decimal. At least one sub-rating is required.
func computeOverall(ratings ...*int) (float64, error) {
	sum := 0
	count := 0
	for _, rating := range ratings {
		if rating != nil {
			sum += *rating
			count++
		}
	}

	if count == 0 {
		return 0, fmt.Errorf("validation failed: at least one rating is required")
	}

	return math.Round(float64(sum)/float64(count)*10) / 10, nil
}

// parseVisitDate parses YYYY-MM-DD; empty means today.
func parseVisitDate(value string) (time.Time, error) {
	if value == "" {
		return time.Now().Truncate(24 * time.Hour), nil
	}

	visitDate, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid visit date %q: %w", value, err)
	}

	if visitDate.After(time.Now()) {
		return time.Time{}, fmt.Errorf("validation failed: visit date is in the future")
	}

	return visitDate, nil
}
