// internal/wire/wire.go
package wire

import (
	"net/http"

	"github.com/Tastrnet/mainversion-sub000/internal/adaptor"
	"github.com/Tastrnet/mainversion-sub000/internal/data/repository"
	"github.com/Tastrnet/mainversion-sub000/internal/usecase"
	"github.com/Tastrnet/mainversion-sub000/pkg/cache"
	"github.com/Tastrnet/mainversion-sub000/pkg/middleware"
	"github.com/Tastrnet/mainversion-sub000/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired router.
type App struct {
	Router *chi.Mux
}

// Wiring builds services and handlers and mounts all routes.
func Wiring(repo *repository.Repository, cache *cache.Cache, media usecase.MediaStore, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, cache, media, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Routes per domain
	wireAuth(r, handler.Auth, repo, logger)
	wireRestaurant(r, handler.Restaurant, handler.List, repo, logger)
	wireReview(r, handler.Review, repo, logger)
	wireList(r, handler.List, repo, logger)
	wireUser(r, handler.Profile, handler.Review, handler.List, handler.Follower, repo, logger)
	wireFeed(r, handler.Activity, repo, logger)
	wireMedia(r, handler.Media, repo, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
