package adaptor

import (
	"net/http"

	"github.com/Tastrnet/mainversion-sub000/internal/usecase"
	"github.com/Tastrnet/mainversion-sub000/pkg/utils"

	"go.uber.org/zap"
)

type ActivityHandler struct {
	service usecase.ActivityService
	log     *zap.Logger
}

func NewActivityHandler(service usecase.ActivityService, log *zap.Logger) *ActivityHandler {
	return &ActivityHandler{
		service: service,
		log:     log.With(zap.String("handler", "activity")),
	}
}

// GetFeed handles GET /api/feed
func (h *ActivityHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	req := paginationFromQuery(r)

	feed, err := h.service.GetFeed(r.Context(), callerID(r), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "get activity feed")
		return
	}

	utils.ResponseSuccess(w, "success", feed)
}
