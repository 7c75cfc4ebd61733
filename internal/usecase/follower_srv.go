package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Tastrnet/mainversion-sub000/internal/data/entity"
	"github.com/Tastrnet/mainversion-sub000/internal/data/repository"
	"github.com/Tastrnet/mainversion-sub000/internal/dto/request"
	"github.com/Tastrnet/mainversion-sub000/internal/dto/response"
	"github.com/Tastrnet/mainversion-sub000/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FollowerService interface {
	Follow(ctx context.Context, followerID, followeeID string) error
	Unfollow(ctx context.Context, followerID, followeeID string) error
	GetFollowers(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserSummary], error)
	GetFollowing(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserSummary], error)
}

type followerService struct {
	repo  *repository.Repository
	media MediaStore
	log   *zap.Logger
}

func NewFollowerService(repo *repository.Repository, media MediaStore, log *zap.Logger) FollowerService {
	return &followerService{
		repo:  repo,
		media: media,
		log:   log.With(zap.String("service", "follower")),
	}
}

func (s *followerService) Follow(ctx context.Context, followerID, followeeID string) error {
	followerUUID, err := uuid.Parse(followerID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", followerID, err)
	}

	followeeUUID, err := uuid.Parse(followeeID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", followeeID, err)
	}

	if followerUUID == followeeUUID {
		return fmt.Errorf("cannot follow yourself")
	}

	followee, err := s.repo.User.FindByID(ctx, followeeUUID)
	if err != nil || followee == nil {
		return fmt.Errorf("user %s not found", followeeID)
	}

	now := time.Now()
	inserted, err := s.repo.Follower.Follow(ctx, &entity.Follower{
		ID:         uuid.New(),
		FollowerID: followerUUID,
		FolloweeID: followeeUUID,
		CreatedAt:  now,
	})
	if err != nil {
		s.log.Error("Failed to follow user",
			zap.Error(err),
			zap.String("follower_id", followerID),
			zap.String("followee_id", followeeID),
		)
		return fmt.Errorf("follow user: %w", err)
	}

	// Already following: idempotent, no second activity.
	if !inserted {
		return nil
	}

	activity := &entity.Activity{
		BaseSimple:   entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
		UserID:       followerUUID,
		Type:         entity.ActivityFollowedUser,
		TargetUserID: &followeeUUID,
	}
	if err := s.repo.Activity.Create(ctx, activity); err != nil {
		s.log.Warn("Failed to record follow activity",
			zap.Error(err),
			zap.String("follower_id", followerID),
		)
	}

	s.log.Info("User followed",
		zap.String("follower_id", followerID),
		zap.String("followee_id", followeeID),
	)

	return nil
}

func (s *followerService) Unfollow(ctx context.Context, followerID, followeeID string) error {
	followerUUID, err := uuid.Parse(followerID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", followerID, err)
	}

	followeeUUID, err := uuid.Parse(followeeID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", followeeID, err)
	}

	if err := s.repo.Follower.Unfollow(ctx, followerUUID, followeeUUID); err != nil {
		s.log.Error("Failed to unfollow user",
			zap.Error(err),
			zap.String("follower_id", followerID),
			zap.String("followee_id", followeeID),
		)
		return fmt.Errorf("unfollow user: %w", err)
	}

	return nil
}

func (s *followerService) GetFollowers(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserSummary], error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	users, err := s.repo.Follower.FindFollowers(ctx, userUUID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get followers",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("get followers: %w", err)
	}

	total, err := s.repo.Follower.CountFollowers(ctx, userUUID)
	if err != nil {
		return nil, fmt.Errorf("count followers: %w", err)
	}

	return response.NewPaginatedResponse(s.summaries(users), req.Page, req.PerPage, total), nil
}

func (s *followerService) GetFollowing(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserSummary], error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	users, err := s.repo.Follower.FindFollowing(ctx, userUUID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get following",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("get following: %w", err)
	}

	total, err := s.repo.Follower.CountFollowing(ctx, userUUID)
	if err != nil {
		return nil, fmt.Errorf("count following: %w", err)
	}

	return response.NewPaginatedResponse(s.summaries(users), req.Page, req.PerPage, total), nil
}

// ==================== HELPER METHODS ====================

func (s *followerService) summaries(users []*entity.User) []response.UserSummary {
	results := make([]response.UserSummary, len(users))
	for i, user := range users {
		results[i] = response.UserToSummary(user, avatarURL(s.media, user, s.log))
	}
	return results
}

// avatarURL presigns a user's avatar key; empty when the user has no avatar
// or presigning fails.
func avatarURL(media MediaStore, user *entity.User, log *zap.Logger) string {
	if user.AvatarKey == nil || *user.AvatarKey == "" {
		return ""
	}

	url, err := media.PresignDownload(storage.BucketAvatars, *user.AvatarKey)
	if err != nil {
		log.Warn("Failed to presign avatar",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return ""
	}

	return url
}
