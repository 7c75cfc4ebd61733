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

type ListHandler struct {
	service usecase.ListService
	log     *zap.Logger
}

func NewListHandler(service usecase.ListService, log *zap.Logger) *ListHandler {
	return &ListHandler{
		service: service,
		log:     log.With(zap.String("handler", "list")),
	}
}

// Create handles POST /api/lists
func (h *ListHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateListRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	list, err := h.service.CreateList(r.Context(), callerID(r), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create list")
		return
	}

	utils.ResponseCreated(w, "List created", list)
}

// GetByUser handles GET /api/users/{id}/lists
func (h *ListHandler) GetByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	lists, err := h.service.GetUserLists(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get user lists")
		return
	}

	utils.ResponseSuccess(w, "success", lists)
}

// GetByID handles GET /api/lists/{id}
func (h *ListHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	listID := chi.URLParam(r, "id")

	list, err := h.service.GetList(r.Context(), listID, callerID(r))
	if err != nil {
		handleServiceError(w, h.log, err, "get list")
		return
	}

	utils.ResponseSuccess(w, "success", list)
}

// Update handles PUT /api/lists/{id}
func (h *ListHandler) Update(w http.ResponseWriter, r *http.Request) {
	listID := chi.URLParam(r, "id")

	var req request.UpdateListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	list, err := h.service.UpdateList(r.Context(), listID, callerID(r), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update list")
		return
	}

	utils.ResponseSuccess(w, "List updated", list)
}

// Delete handles DELETE /api/lists/{id}
func (h *ListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	listID := chi.URLParam(r, "id")

	if err := h.service.DeleteList(r.Context(), listID, callerID(r)); err != nil {
		handleServiceError(w, h.log, err, "delete list")
		return
	}

	utils.ResponseSuccess(w, "List deleted", nil)
}

// AddRestaurant handles POST /api/lists/{id}/restaurants
func (h *ListHandler) AddRestaurant(w http.ResponseWriter, r *http.Request) {
	listID := chi.URLParam(r, "id")

	var req request.AddListEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.AddRestaurant(r.Context(), listID, callerID(r), &req); err != nil {
		handleServiceError(w, h.log, err, "add restaurant to list")
		return
	}

	utils.ResponseCreated(w, "Restaurant added to list", nil)
}

// RemoveRestaurant handles DELETE /api/lists/{id}/restaurants/{restaurantId}
func (h *ListHandler) RemoveRestaurant(w http.ResponseWriter, r *http.Request) {
	listID := chi.URLParam(r, "id")
	restaurantID := chi.URLParam(r, "restaurantId")

	if err := h.service.RemoveRestaurant(r.Context(), listID, restaurantID, callerID(r)); err != nil {
		handleServiceError(w, h.log, err, "remove restaurant from list")
		return
	}

	utils.ResponseSuccess(w, "Restaurant removed from list", nil)
}

// UpdateNote handles PUT /api/lists/{id}/restaurants/{restaurantId}/note
func (h *ListHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	listID := chi.URLParam(r, "id")
	restaurantID := chi.URLParam(r, "restaurantId")

	var req request.UpdateListEntryNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.UpdateEntryNote(r.Context(), listID, restaurantID, callerID(r), &req); err != nil {
		handleServiceError(w, h.log, err, "update list entry note")
		return
	}

	utils.ResponseSuccess(w, "Note updated", nil)
}

// Reorder handles PUT /api/lists/{id}/restaurants/{restaurantId}/position
func (h *ListHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	listID := chi.URLParam(r, "id")
	restaurantID := chi.URLParam(r, "restaurantId")

	var req request.ReorderListEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.ReorderEntry(r.Context(), listID, restaurantID, callerID(r), &req); err != nil {
		handleServiceError(w, h.log, err, "reorder list entry")
		return
	}

	utils.ResponseSuccess(w, "Entry moved", nil)
}

// Save handles POST /api/restaurants/{id}/save (want-to-try shortcut)
func (h *ListHandler) Save(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "id")

	if err := h.service.SaveToWantToTry(r.Context(), callerID(r), restaurantID); err != nil {
		handleServiceError(w, h.log, err, "save restaurant")
		return
	}

	utils.ResponseCreated(w, "Restaurant saved", nil)
}

// Like handles POST /api/lists/{id}/like
func (h *ListHandler) Like(w http.ResponseWriter, r *http.Request) {
	listID := chi.URLParam(r, "id")

	if err := h.service.LikeList(r.Context(), listID, callerID(r)); err != nil {
		handleServiceError(w, h.log, err, "like list")
		return
	}

	utils.ResponseSuccess(w, "List liked", nil)
}

// Unlike handles DELETE /api/lists/{id}/like
func (h *ListHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	listID := chi.URLParam(r, "id")

	if err := h.service.UnlikeList(r.Context(), listID, callerID(r)); err != nil {
		handleServiceError(w, h.log, err, "unlike list")
		return
	}

	utils.ResponseSuccess(w, "List unliked", nil)
}
