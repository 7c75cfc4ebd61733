package wire

import (
	"github.com/Tastrnet/mainversion-sub000/internal/adaptor"
	"github.com/Tastrnet/mainversion-sub000/internal/data/repository"
	"github.com/Tastrnet/mainversion-sub000/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMedia(
	r chi.Router,
	mediaHandler *adaptor.MediaHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// POST /api/media/presign - Direct-to-bucket upload URL
	r.With(middleware.AuthSession(repo.Session, log)).
		Post("/api/media/presign", mediaHandler.PresignUpload)
}
