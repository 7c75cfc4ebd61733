package adaptor

import (
	"net/http"
	"strings"

	"github.com/Tastrnet/mainversion-sub000/internal/usecase"
	"github.com/Tastrnet/mainversion-sub000/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth       *AuthHandler
	Profile    *ProfileHandler
	Restaurant *RestaurantHandler
	Review     *ReviewHandler
	List       *ListHandler
	Follower   *FollowerHandler
	Activity   *ActivityHandler
	Media      *MediaHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(service.Auth, log),
		Profile:    NewProfileHandler(service.Profile, log),
		Restaurant: NewRestaurantHandler(service.Restaurant, service.Review, log),
		Review:     NewReviewHandler(service.Review, log),
		List:       NewListHandler(service.List, log),
		Follower:   NewFollowerHandler(service.Follower, log),
		Activity:   NewActivityHandler(service.Activity, log),
		Media:      NewMediaHandler(service.Media, log),
	}
}

// handleServiceError maps service errors to HTTP responses by message
// content. Services phrase their errors to match these cases.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "already registered"),
		strings.Contains(errMsg, "already taken"),
		strings.Contains(errMsg, "already in list"):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "invalid credentials"):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "unauthorized"),
		strings.Contains(errMsg, "deactivated"):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"),
		strings.Contains(errMsg, "reserved"),
		strings.Contains(errMsg, "cannot"):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// callerID returns the authenticated user id from the request context, or ""
// on anonymous requests behind OptionalAuth.
func callerID(r *http.Request) string {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return ""
	}
	return userID.String()
}
