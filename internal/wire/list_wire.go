package wire

import (
	"github.com/Tastrnet/mainversion-sub000/internal/adaptor"
	"github.com/Tastrnet/mainversion-sub000/internal/data/repository"
	"github.com/Tastrnet/mainversion-sub000/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireList(
	r chi.Router,
	listHandler *adaptor.ListHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/api/lists", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		// GET /api/lists/{id} - List detail with ordered entries.
		// OptionalAuth drives the liked_by_me flag.
		r.With(middleware.OptionalAuth(repo.Session, log)).
			Get("/{id}", listHandler.GetByID)

		// ==================== PROTECTED ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthSession(repo.Session, log))

			r.Post("/", listHandler.Create)
			r.Put("/{id}", listHandler.Update)
			r.Delete("/{id}", listHandler.Delete)

			// Entry management
			r.Post("/{id}/restaurants", listHandler.AddRestaurant)
			r.Delete("/{id}/restaurants/{restaurantId}", listHandler.RemoveRestaurant)
			r.Put("/{id}/restaurants/{restaurantId}/note", listHandler.UpdateNote)
			r.Put("/{id}/restaurants/{restaurantId}/position", listHandler.Reorder)

			// Likes
			r.Post("/{id}/like", listHandler.Like)
			r.Delete("/{id}/like", listHandler.Unlike)
		})
	})
}
