package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/Tastrnet/mainversion-sub000/internal/dto/request"
	"github.com/Tastrnet/mainversion-sub000/internal/usecase"
	"github.com/Tastrnet/mainversion-sub000/pkg/utils"

	"go.uber.org/zap"
)

type MediaHandler struct {
	service usecase.MediaService
	log     *zap.Logger
}

func NewMediaHandler(service usecase.MediaService, log *zap.Logger) *MediaHandler {
	return &MediaHandler{
		service: service,
		log:     log.With(zap.String("handler", "media")),
	}
}

// PresignUpload handles POST /api/media/presign
func (h *MediaHandler) PresignUpload(w http.ResponseWriter, r *http.Request) {
	var req request.PresignUploadRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	presigned, err := h.service.PresignUpload(callerID(r), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "presign upload")
		return
	}

	utils.ResponseSuccess(w, "success", presigned)
}
