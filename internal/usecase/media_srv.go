package usecase

import (
	"fmt"

	"github.com/Tastrnet/mainversion-sub000/internal/dto/request"
	"github.com/Tastrnet/mainversion-sub000/internal/dto/response"
	"github.com/Tastrnet/mainversion-sub000/pkg/utils"

	"go.uber.org/zap"
)

type MediaService interface {
	// PresignUpload issues a short-lived URL the client PUTs the image
	// bytes to. The server never proxies the payload.
	PresignUpload(userID string, req *request.PresignUploadRequest) (*response.PresignUploadResponse, error)
}

type mediaService struct {
	media MediaStore
	log   *zap.Logger
}

func NewMediaService(media MediaStore, log *zap.Logger) MediaService {
	return &mediaService{
		media: media,
		log:   log.With(zap.String("service", "media")),
	}
}

var contentTypeExt = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

func (s *mediaService) PresignUpload(userID string, req *request.PresignUploadRequest) (*response.PresignUploadResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Presign upload validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	ext, ok := contentTypeExt[req.ContentType]
	if !ok {
		return nil, fmt.Errorf("validation failed: unsupported content type %s", req.ContentType)
	}

	key := utils.NewObjectKey(userUUID, ext)

	url, err := s.media.PresignUpload(req.Bucket, key, req.ContentType)
	if err != nil {
		s.log.Error("Failed to presign upload",
			zap.Error(err),
			zap.String("bucket", req.Bucket),
			zap.String("key", key),
		)
		return nil, fmt.Errorf("presign upload: %w", err)
	}

	s.log.Info("Upload presigned",
		zap.String("bucket", req.Bucket),
		zap.String("key", key),
		zap.String("user_id", userID),
	)

	return &response.PresignUploadResponse{
		Bucket:    req.Bucket,
		Key:       key,
		UploadURL: url,
	}, nil
}
