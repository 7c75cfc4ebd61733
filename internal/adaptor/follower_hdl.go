package adaptor

import (
	"net/http"

	"github.com/Tastrnet/mainversion-sub000/internal/usecase"
	"github.com/Tastrnet/mainversion-sub000/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FollowerHandler struct {
	service usecase.FollowerService
	log     *zap.Logger
}

func NewFollowerHandler(service usecase.FollowerService, log *zap.Logger) *FollowerHandler {
	return &FollowerHandler{
		service: service,
		log:     log.With(zap.String("handler", "follower")),
	}
}

// Follow handles POST /api/users/{id}/follow
func (h *FollowerHandler) Follow(w http.ResponseWriter, r *http.Request) {
	followeeID := chi.URLParam(r, "id")

	if err := h.service.Follow(r.Context(), callerID(r), followeeID); err != nil {
		handleServiceError(w, h.log, err, "follow user")
		return
	}

	utils.ResponseSuccess(w, "Following", nil)
}

// Unfollow handles DELETE /api/users/{id}/follow
func (h *FollowerHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	followeeID := chi.URLParam(r, "id")

	if err := h.service.Unfollow(r.Context(), callerID(r), followeeID); err != nil {
		handleServiceError(w, h.log, err, "unfollow user")
		return
	}

	utils.ResponseSuccess(w, "Unfollowed", nil)
}

// GetFollowers handles GET /api/users/{id}/followers
func (h *FollowerHandler) GetFollowers(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	req := paginationFromQuery(r)

	followers, err := h.service.GetFollowers(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "get followers")
		return
	}

	utils.ResponseSuccess(w, "success", followers)
}

// GetFollowing handles GET /api/users/{id}/following
func (h *FollowerHandler) GetFollowing(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	req := paginationFromQuery(r)

	following, err := h.service.GetFollowing(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "get following")
		return
	}

	utils.ResponseSuccess(w, "success", following)
}
