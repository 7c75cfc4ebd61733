package adaptor

import (
	"net/http"

	"github.com/Tastrnet/mainversion-sub000/internal/dto/request"
	"github.com/Tastrnet/mainversion-sub000/internal/usecase"
	"github.com/Tastrnet/mainversion-sub000/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RestaurantHandler struct {
	service usecase.RestaurantService
	reviews usecase.ReviewService
	log     *zap.Logger
}

func NewRestaurantHandler(service usecase.RestaurantService, reviews usecase.ReviewService, log *zap.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		service: service,
		reviews: reviews,
		log:     log.With(zap.String("handler", "restaurant")),
	}
}

// GetNearby handles GET /api/restaurants/nearby
func (h *RestaurantHandler) GetNearby(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	lat, latOK := utils.ParseFloat(query.Get("lat"))
	lng, lngOK := utils.ParseFloat(query.Get("lng"))
	if !latOK || !lngOK {
		utils.ResponseBadRequest(w, "lat and lng query parameters are required", nil)
		return
	}

	req := &request.NearbyRequest{
		Latitude:  lat,
		Longitude: lng,
		Limit:     utils.ParseInt(query.Get("limit"), 0),
		Cuisine:   query.Get("cuisine"),
	}
	if radius, ok := utils.ParseFloat(query.Get("radius_m")); ok {
		req.RadiusM = radius
	}

	restaurants, err := h.service.Nearby(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get nearby restaurants")
		return
	}

	utils.ResponseSuccess(w, "success", restaurants)
}

// GetPopular handles GET /api/restaurants/popular
func (h *RestaurantHandler) GetPopular(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &request.BrowseRequest{
		PaginatedRequest: paginationFromQuery(r),
		Cuisine:          query.Get("cuisine"),
	}

	restaurants, err := h.service.Popular(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get popular restaurants")
		return
	}

	utils.ResponseSuccess(w, "success", restaurants)
}

// GetFeatured handles GET /api/restaurants/featured
func (h *RestaurantHandler) GetFeatured(w http.ResponseWriter, r *http.Request) {
	req := paginationFromQuery(r)

	restaurants, err := h.service.Featured(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "get featured restaurants")
		return
	}

	utils.ResponseSuccess(w, "success", restaurants)
}

// Search handles GET /api/restaurants/search
func (h *RestaurantHandler) Search(w http.ResponseWriter, r *http.Request) {
	req := &request.SearchRequest{
		PaginatedRequest: paginationFromQuery(r),
		Query:            r.URL.Query().Get("q"),
	}

	restaurants, err := h.service.Search(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "search restaurants")
		return
	}

	utils.ResponseSuccess(w, "success", restaurants)
}

// GetByID handles GET /api/restaurants/{id}
func (h *RestaurantHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "id")

	restaurant, err := h.service.GetByID(r.Context(), restaurantID)
	if err != nil {
		handleServiceError(w, h.log, err, "get restaurant")
		return
	}

	utils.ResponseSuccess(w, "success", restaurant)
}

// GetReviews handles GET /api/restaurants/{id}/reviews.
// Behind OptionalAuth: authenticated callers also see their own private
// reviews.
func (h *RestaurantHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "id")
	req := paginationFromQuery(r)

	reviews, err := h.reviews.GetRestaurantReviews(r.Context(), restaurantID, callerID(r), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "get restaurant reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// GetStats handles GET /api/restaurants/{id}/stats
func (h *RestaurantHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "id")

	stats, err := h.reviews.GetRestaurantStats(r.Context(), restaurantID)
	if err != nil {
		handleServiceError(w, h.log, err, "get restaurant stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}

// GetCuisines handles GET /api/cuisines
func (h *RestaurantHandler) GetCuisines(w http.ResponseWriter, r *http.Request) {
	cuisines, err := h.service.Cuisines(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get cuisines")
		return
	}

	utils.ResponseSuccess(w, "success", cuisines)
}

// paginationFromQuery reads page/per_page with sane defaults.
func paginationFromQuery(r *http.Request) request.PaginatedRequest {
	query := r.URL.Query()
	return request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}
}
