package usecase

import (
	"context"
	"fmt"

	"github.com/Tastrnet/mainversion-sub000/internal/data/entity"
	"github.com/Tastrnet/mainversion-sub000/internal/data/repository"
	"github.com/Tastrnet/mainversion-sub000/internal/dto/request"
	"github.com/Tastrnet/mainversion-sub000/internal/dto/response"
	"github.com/Tastrnet/mainversion-sub000/pkg/storage"

	"go.uber.org/zap"
)

type ActivityService interface {
	// GetFeed returns the newest activities of the users the caller
	// follows.
	GetFeed(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ActivityResponse], error)
}

type activityService struct {
	repo  *repository.Repository
	media MediaStore
	log   *zap.Logger
}

func NewActivityService(repo *repository.Repository, media MediaStore, log *zap.Logger) ActivityService {
	return &activityService{
		repo:  repo,
		media: media,
		log:   log.With(zap.String("service", "activity")),
	}
}

func (s *activityService) GetFeed(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ActivityResponse], error) {
	userUUID, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	followeeIDs, err := s.repo.Follower.FolloweeIDs(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to get followees",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("get feed: %w", err)
	}

	if len(followeeIDs) == 0 {
		return response.NewPaginatedResponse([]response.ActivityResponse{}, req.Page, req.PerPage, 0), nil
	}

	activities, err := s.repo.Activity.FindByUserIDs(ctx, followeeIDs, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get feed activities",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("get feed: %w", err)
	}

	total, err := s.repo.Activity.CountByUserIDs(ctx, followeeIDs)
	if err != nil {
		return nil, fmt.Errorf("count feed: %w", err)
	}

	results := make([]response.ActivityResponse, 0, len(activities))
	for _, activity := range activities {
		item, ok := s.hydrate(ctx, activity)
		if !ok {
			continue
		}
		results = append(results, item)
	}

	return response.NewPaginatedResponse(results, req.Page, req.PerPage, total), nil
}

// ==================== HELPER METHODS ====================

// hydrate resolves the actor and the referenced object. Activities whose
// referent has since been deleted are dropped from the feed.
func (s *activityService) hydrate(ctx context.Context, activity *entity.Activity) (response.ActivityResponse, bool) {
	actor, err := s.repo.User.FindByID(ctx, activity.UserID)
	if err != nil || actor == nil {
		return response.ActivityResponse{}, false
	}

	item := response.ActivityToResponse(activity, response.UserToSummary(actor, avatarURL(s.media, actor, s.log)))

	switch activity.Type {
	case entity.ActivityReviewCreated:
		if activity.ReviewID == nil {
			return response.ActivityResponse{}, false
		}
		review, err := s.repo.Review.FindByID(ctx, *activity.ReviewID)
		if err != nil || review == nil || !review.IsPublic {
			return response.ActivityResponse{}, false
		}
		restaurant, _ := s.repo.Restaurant.FindByID(ctx, review.RestaurantID)
		restaurantName := ""
		if restaurant != nil {
			restaurantName = restaurant.Name
		}
		resp := response.ReviewToResponse(review, actor.Username, restaurantName, s.reviewPhotoURLs(review))
		item.Review = &resp

	case entity.ActivityListCreated, entity.ActivityListLiked:
		if activity.ListID == nil {
			return response.ActivityResponse{}, false
		}
		list, err := s.repo.List.FindByID(ctx, *activity.ListID)
		if err != nil || list == nil {
			return response.ActivityResponse{}, false
		}
		entryCount, _ := s.repo.ListRestaurant.MaxPosition(ctx, list.ID)
		likeCount, _ := s.repo.ListLike.CountByListID(ctx, list.ID)
		resp := response.ListToResponse(list, entryCount, likeCount)
		item.List = &resp

	case entity.ActivityFollowedUser:
		if activity.TargetUserID == nil {
			return response.ActivityResponse{}, false
		}
		target, err := s.repo.User.FindByID(ctx, *activity.TargetUserID)
		if err != nil || target == nil {
			return response.ActivityResponse{}, false
		}
		summary := response.UserToSummary(target, avatarURL(s.media, target, s.log))
		item.TargetUser = &summary

	default:
		return response.ActivityResponse{}, false
	}

	return item, true
}

func (s *activityService) reviewPhotoURLs(review *entity.Review) []string {
	if len(review.PhotoKeys) == 0 {
		return nil
	}

	urls := make([]string, 0, len(review.PhotoKeys))
	for _, key := range review.PhotoKeys {
		url, err := s.media.PresignDownload(storage.BucketPhotos, key)
		if err != nil {
			continue
		}
		urls = append(urls, url)
	}

	return urls
}
