package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/Tastrnet/mainversion-sub000/internal/dto/request"
	"github.com/Tastrnet/mainversion-sub000/internal/usecase"
	"github.com/Tastrnet/mainversion-sub000/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	service usecase.ProfileService
	log     *zap.Logger
}

func NewProfileHandler(service usecase.ProfileService, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		log:     log.With(zap.String("handler", "profile")),
	}
}

// GetMe handles GET /api/me
func (h *ProfileHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID := callerID(r)

	profile, err := h.service.GetProfile(r.Context(), userID, userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get own profile")
		return
	}

	utils.ResponseSuccess(w, "success", profile)
}

// UpdateMe handles PUT /api/me
func (h *ProfileHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateProfileRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), callerID(r), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update profile")
		return
	}

	utils.ResponseSuccess(w, "Profile updated", profile)
}

// GetByID handles GET /api/users/{id}.
// Behind OptionalAuth so IsFollowed reflects the caller.
func (h *ProfileHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	profile, err := h.service.GetProfile(r.Context(), userID, callerID(r))
	if err != nil {
		handleServiceError(w, h.log, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "success", profile)
}

// GetByUsername handles GET /api/users/by-username/{username}
func (h *ProfileHandler) GetByUsername(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	profile, err := h.service.GetByUsername(r.Context(), username, callerID(r))
	if err != nil {
		handleServiceError(w, h.log, err, "get profile by username")
		return
	}

	utils.ResponseSuccess(w, "success", profile)
}
