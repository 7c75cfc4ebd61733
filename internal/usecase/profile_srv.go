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
	"github.com/Tastrnet/mainversion-sub000/pkg/utils"

	"go.uber.org/zap"
)

type ProfileService interface {
	// GetProfile returns a user's public profile. viewerID is empty for
	// anonymous requests and drives the IsFollowed flag.
	GetProfile(ctx context.Context, userID, viewerID string) (*response.ProfileResponse, error)
	GetByUsername(ctx context.Context, username, viewerID string) (*response.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *request.UpdateProfileRequest) (*response.ProfileResponse, error)
}

type profileService struct {
	repo  *repository.Repository
	media MediaStore
	log   *zap.Logger
}

func NewProfileService(repo *repository.Repository, media MediaStore, log *zap.Logger) ProfileService {
	return &profileService{
		repo:  repo,
		media: media,
		log:   log.With(zap.String("service", "profile")),
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID, viewerID string) (*response.ProfileResponse, error) {
	userUUID, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.User.FindByID(ctx, userUUID)
	if err != nil || user == nil {
		return nil, fmt.Errorf("user %s not found", userID)
	}

	return s.buildProfile(ctx, user, viewerID)
}

func (s *profileService) GetByUsername(ctx context.Context, username, viewerID string) (*response.ProfileResponse, error) {
	user, err := s.repo.User.FindByUsername(ctx, username)
	if err != nil || user == nil {
		return nil, fmt.Errorf("user %s not found", username)
	}

	return s.buildProfile(ctx, user, viewerID)
}

func (s *profileService) UpdateProfile(ctx context.Context, userID string, req *request.UpdateProfileRequest) (*response.ProfileResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.User.FindByID(ctx, userUUID)
	if err != nil || user == nil {
		return nil, fmt.Errorf("user %s not found", userID)
	}

	if req.Bio != nil {
		user.Bio = req.Bio
	}
	var oldAvatarKey string
	if req.AvatarKey != nil {
		if user.AvatarKey != nil && *user.AvatarKey != *req.AvatarKey {
			oldAvatarKey = *user.AvatarKey
		}
		user.AvatarKey = req.AvatarKey
	}
	user.UpdatedAt = time.Now()

	if err := s.repo.User.UpdateProfile(ctx, user); err != nil {
		s.log.Error("Failed to update profile",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("update profile: %w", err)
	}

	if oldAvatarKey != "" {
		if err := s.media.DeleteObject(storage.BucketAvatars, oldAvatarKey); err != nil {
			s.log.Warn("Failed to delete replaced avatar",
				zap.Error(err),
				zap.String("user_id", userID),
				zap.String("key", oldAvatarKey),
			)
		}
	}

	s.log.Info("Profile updated", zap.String("user_id", userID))

	return s.buildProfile(ctx, user, userID)
}

// ==================== HELPER METHODS ====================

func (s *profileService) buildProfile(ctx context.Context, user *entity.User, viewerID string) (*response.ProfileResponse, error) {
	reviewCount, _ := s.repo.Review.CountByUserID(ctx, user.ID, viewerID == user.ID.String())
	listCount, _ := s.repo.List.CountByUserID(ctx, user.ID)
	followerCount, _ := s.repo.Follower.CountFollowers(ctx, user.ID)
	followingCount, _ := s.repo.Follower.CountFollowing(ctx, user.ID)

	isFollowed := false
	if viewerID != "" && viewerID != user.ID.String() {
		viewerUUID, err := parseUserID(viewerID)
		if err == nil {
			isFollowed, _ = s.repo.Follower.IsFollowing(ctx, viewerUUID, user.ID)
		}
	}

	return &response.ProfileResponse{
		ID:             user.ID.String(),
		Username:       user.Username,
		AvatarURL:      avatarURL(s.media, user, s.log),
		Bio:            user.Bio,
		CreatedAt:      user.CreatedAt,
		ReviewCount:    reviewCount,
		ListCount:      listCount,
		FollowerCount:  followerCount,
		FollowingCount: followingCount,
		IsFollowed:     isFollowed,
	}, nil
}
