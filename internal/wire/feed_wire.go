package wire

import (
	"github.com/Tastrnet/mainversion-sub000/internal/adaptor"
	"github.com/Tastrnet/mainversion-sub000/internal/data/repository"
	"github.com/Tastrnet/mainversion-sub000/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireFeed(
	r chi.Router,
	activityHandler *adaptor.ActivityHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// GET /api/feed - Activities of followed users, newest first
	r.With(middleware.AuthSession(repo.Session, log)).
		Get("/api/feed", activityHandler.GetFeed)
}
