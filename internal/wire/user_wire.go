package wire

import (
	"github.com/Tastrnet/mainversion-sub000/internal/adaptor"
	"github.com/Tastrnet/mainversion-sub000/internal/data/repository"
	"github.com/Tastrnet/mainversion-sub000/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	profileHandler *adaptor.ProfileHandler,
	reviewHandler *adaptor.ReviewHandler,
	listHandler *adaptor.ListHandler,
	followerHandler *adaptor.FollowerHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== OWN PROFILE ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Get("/api/me", profileHandler.GetMe)
		r.Put("/api/me", profileHandler.UpdateMe)
	})

	// ==================== PUBLIC PROFILES ====================
	// OptionalAuth: IsFollowed and private-review visibility depend on
	// who is asking.
	r.Route("/api/users", func(r chi.Router) {
		r.Use(middleware.OptionalAuth(repo.Session, log))

		r.Get("/by-username/{username}", profileHandler.GetByUsername)
		r.Get("/{id}", profileHandler.GetByID)
		r.Get("/{id}/reviews", reviewHandler.GetByUser)
		r.Get("/{id}/lists", listHandler.GetByUser)
		r.Get("/{id}/followers", followerHandler.GetFollowers)
		r.Get("/{id}/following", followerHandler.GetFollowing)

		// Follow/unfollow require a session
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthSession(repo.Session, log))

			r.Post("/{id}/follow", followerHandler.Follow)
			r.Delete("/{id}/follow", followerHandler.Unfollow)
		})
	})
}
