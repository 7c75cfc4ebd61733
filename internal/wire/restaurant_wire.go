package wire

import (
	"github.com/Tastrnet/mainversion-sub000/internal/adaptor"
	"github.com/Tastrnet/mainversion-sub000/internal/data/repository"
	"github.com/Tastrnet/mainversion-sub000/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRestaurant(
	r chi.Router,
	restaurantHandler *adaptor.RestaurantHandler,
	listHandler *adaptor.ListHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/cuisines - Cuisine filter options
	r.Get("/api/cuisines", restaurantHandler.GetCuisines)

	r.Route("/api/restaurants", func(r chi.Router) {
		r.Get("/nearby", restaurantHandler.GetNearby)
		r.Get("/popular", restaurantHandler.GetPopular)
		r.Get("/featured", restaurantHandler.GetFeatured)
		r.Get("/search", restaurantHandler.Search)
		r.Get("/{id}", restaurantHandler.GetByID)
		r.Get("/{id}/stats", restaurantHandler.GetStats)

		// Reviews listing is visibility-aware: signed-in callers also
		// see their own private reviews
		r.With(middleware.OptionalAuth(repo.Session, log)).
			Get("/{id}/reviews", restaurantHandler.GetReviews)

		// POST /api/restaurants/{id}/save - add to want-to-try list
		r.With(middleware.AuthSession(repo.Session, log)).
			Post("/{id}/save", listHandler.Save)
	})
}
