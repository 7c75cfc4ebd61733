package usecase

import (
	"fmt"

	"github.com/Tastrnet/mainversion-sub000/internal/data/repository"
	"github.com/Tastrnet/mainversion-sub000/pkg/cache"
	"github.com/Tastrnet/mainversion-sub000/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MediaStore is the slice of pkg/storage.MediaStorage the services need.
type MediaStore interface {
	PresignUpload(bucket, key, contentType string) (string, error)
	PresignDownload(bucket, key string) (string, error)
	DeleteObject(bucket, key string) error
}

type Service struct {
	Auth       AuthService
	Profile    ProfileService
	Restaurant RestaurantService
	Review     ReviewService
	List       ListService
	Follower   FollowerService
	Activity   ActivityService
	Media      MediaService
}

func NewService(repo *repository.Repository, cache *cache.Cache, media MediaStore, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:       NewAuthService(repo, config, log),
		Profile:    NewProfileService(repo, media, log),
		Restaurant: NewRestaurantService(repo, cache, log),
		Review:     NewReviewService(repo, cache, media, log),
		List:       NewListService(repo, log),
		Follower:   NewFollowerService(repo, media, log),
		Activity:   NewActivityService(repo, media, log),
		Media:      NewMediaService(media, log),
	}
}

func parseUserID(userID string) (uuid.UUID, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}
	return id, nil
}
