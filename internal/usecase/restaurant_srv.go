package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Tastrnet/mainversion-sub000/internal/data/entity"
	"github.com/Tastrnet/mainversion-sub000/internal/data/repository"
	"github.com/Tastrnet/mainversion-sub000/internal/dto/request"
	"github.com/Tastrnet/mainversion-sub000/internal/dto/response"
	"github.com/Tastrnet/mainversion-sub000/pkg/cache"
	"github.com/Tastrnet/mainversion-sub000/pkg/geo"
	"github.com/Tastrnet/mainversion-sub000/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RestaurantService interface {
	// Nearby merges the geospatial RPC with the bounding-box fallback,
	// dedups by id keeping the closer entry, and sorts by distance.
	Nearby(ctx context.Context, req *request.NearbyRequest) ([]response.NearbyRestaurantResponse, error)

	Popular(ctx context.Context, req *request.BrowseRequest) (*response.PaginatedResponse[response.RestaurantResponse], error)
	Featured(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RestaurantResponse], error)
	Search(ctx context.Context, req *request.SearchRequest) (*response.PaginatedResponse[response.RestaurantResponse], error)
	GetByID(ctx context.Context, restaurantID string) (*response.RestaurantResponse, error)

	// Cuisines lists the selectable cuisine categories.
	Cuisines(ctx context.Context) ([]response.CuisineResponse, error)
}

type restaurantService struct {
	repo  *repository.Repository
	cache *cache.Cache
	log   *zap.Logger
}

func NewRestaurantService(repo *repository.Repository, cache *cache.Cache, log *zap.Logger) RestaurantService {
	return &restaurantService{
		repo:  repo,
		cache: cache,
		log:   log.With(zap.String("service", "restaurant")),
	}
}

// nearbyCandidate pairs a restaurant with its distance from the query point.
type nearbyCandidate struct {
	restaurant *entity.Restaurant
	distance   float64
}

func (s *restaurantService) Nearby(ctx context.Context, req *request.NearbyRequest) ([]response.NearbyRestaurantResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Nearby validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	origin := geo.Point{Lat: req.Latitude, Lng: req.Longitude}
	radius := req.Radius()
	limit := req.MaxResults()

	cuisineSet, err := s.cuisineSet(ctx, req.Cuisine)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("nearby:%.4f:%.4f:%.0f:%d:%s",
		req.Latitude, req.Longitude, radius, limit, strings.ToLower(req.Cuisine))

	var cached []response.NearbyRestaurantResponse
	if s.cache.GetJSON(ctx, cacheKey, &cached) {
		return cached, nil
	}

	// Primary source: the nearest-restaurants RPC
	rpcRows, rpcErr := s.repo.Restaurant.FindNearby(ctx, req.Latitude, req.Longitude,
		radius, limit, setToSlice(cuisineSet))
	if rpcErr != nil {
		// The bounding-box query below covers for the RPC
		s.log.Warn("Nearby RPC failed, using bounding box only", zap.Error(rpcErr))
	}

	// Fallback/augmentation source: plain range query over the box
	// covering the radius
	boxRows, boxErr := s.repo.Restaurant.FindInBoundingBox(ctx, geo.BoxAround(origin, radius), limit*2)
	if boxErr != nil {
		s.log.Warn("Bounding box query failed", zap.Error(boxErr))
		if rpcErr != nil {
			return nil, fmt.Errorf("nearby restaurants: %w", rpcErr)
		}
	}

	merged := mergeNearby(rpcRows, boxRows, origin, radius)

	// Cuisine filtering happens in memory for the merged set: the RPC
	// filters server-side but the box query does not
	filtered := merged[:0]
	for _, candidate := range merged {
		if matchesCuisine(candidate.restaurant, cuisineSet) {
			filtered = append(filtered, candidate)
		}
	}

	sortByDistance(filtered)

	if len(filtered) > limit {
		filtered = filtered[:limit]
	}

	results := make([]response.NearbyRestaurantResponse, len(filtered))
	for i, candidate := range filtered {
		results[i] = response.NearbyToResponse(candidate.restaurant, candidate.distance)
	}

	s.cache.SetJSON(ctx, cacheKey, results)

	s.log.Info("Nearby restaurants retrieved",
		zap.Float64("lat", req.Latitude),
		zap.Float64("lng", req.Longitude),
		zap.Float64("radius_m", radius),
		zap.Int("count", len(results)),
	)

	return results, nil
}

func (s *restaurantService) Popular(ctx context.Context, req *request.BrowseRequest) (*response.PaginatedResponse[response.RestaurantResponse], error) {
	cuisineSet, err := s.cuisineSet(ctx, req.Cuisine)
	if err != nil {
		return nil, err
	}
	names := setToSlice(cuisineSet)

	restaurants, err := s.repo.Restaurant.FindPopular(ctx, names, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get popular restaurants", zap.Error(err))
		return nil, fmt.Errorf("get popular restaurants: %w", err)
	}

	total, err := s.repo.Restaurant.CountPopular(ctx, names)
	if err != nil {
		s.log.Error("Failed to count popular restaurants", zap.Error(err))
		return nil, fmt.Errorf("count popular restaurants: %w", err)
	}

	return response.NewPaginatedResponse(toRestaurantResponses(restaurants), req.Page, req.PerPage, total), nil
}

func (s *restaurantService) Featured(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RestaurantResponse], error) {
	restaurants, err := s.repo.Restaurant.FindFeatured(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get featured restaurants", zap.Error(err))
		return nil, fmt.Errorf("get featured restaurants: %w", err)
	}

	total, err := s.repo.Restaurant.CountFeatured(ctx)
	if err != nil {
		s.log.Error("Failed to count featured restaurants", zap.Error(err))
		return nil, fmt.Errorf("count featured restaurants: %w", err)
	}

	return response.NewPaginatedResponse(toRestaurantResponses(restaurants), req.Page, req.PerPage, total), nil
}

func (s *restaurantService) Search(ctx context.Context, req *request.SearchRequest) (*response.PaginatedResponse[response.RestaurantResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Search validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	restaurants, err := s.repo.Restaurant.SearchByName(ctx, req.Query, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to search restaurants", zap.Error(err), zap.String("query", req.Query))
		return nil, fmt.Errorf("search restaurants: %w", err)
	}

	total, err := s.repo.Restaurant.CountByName(ctx, req.Query)
	if err != nil {
		s.log.Error("Failed to count search results", zap.Error(err))
		return nil, fmt.Errorf("count search results: %w", err)
	}

	return response.NewPaginatedResponse(toRestaurantResponses(restaurants), req.Page, req.PerPage, total), nil
}

func (s *restaurantService) GetByID(ctx context.Context, restaurantID string) (*response.RestaurantResponse, error) {
	id, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("invalid restaurant ID format %s: %w", restaurantID, err)
	}

	restaurant, err := s.repo.Restaurant.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get restaurant", zap.Error(err), zap.String("restaurant_id", restaurantID))
		return nil, fmt.Errorf("get restaurant: %w", err)
	}
	if restaurant == nil {
		return nil, fmt.Errorf("restaurant %s not found", restaurantID)
	}

	resp := response.RestaurantToResponse(restaurant)
	return &resp, nil
}

func (s *restaurantService) Cuisines(ctx context.Context) ([]response.CuisineResponse, error) {
	cacheKey := "cuisines:all"

	var cached []response.CuisineResponse
	if s.cache.GetJSON(ctx, cacheKey, &cached) {
		return cached, nil
	}

	cuisines, err := s.repo.Cuisine.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list cuisines", zap.Error(err))
		return nil, fmt.Errorf("list cuisines: %w", err)
	}

	results := make([]response.CuisineResponse, len(cuisines))
	for i, cuisine := range cuisines {
		results[i] = response.CuisineToResponse(cuisine)
	}

	s.cache.SetJSON(ctx, cacheKey, results)

	return results, nil
}

// cuisineSet resolves the selected cuisine into its equivalence set over
// the category table. Empty selection yields an empty set (no filter).
func (s *restaurantService) cuisineSet(ctx context.Context, selected string) (map[string]struct{}, error) {
	if strings.TrimSpace(selected) == "" {
		return nil, nil
	}

	cuisines, err := s.repo.Cuisine.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load cuisine table", zap.Error(err))
		return nil, fmt.Errorf("load cuisines: %w", err)
	}

	return expandCuisine(cuisines, selected), nil
}

// mergeNearby reconciles the RPC result with the bounding-box fallback:
// rows are keyed by restaurant id and the closer of any duplicate wins.
// Fallback rows get a client-computed haversine distance; rows without
// coordinates or outside the radius are dropped.
func mergeNearby(rpcRows []*repository.NearbyRow, boxRows []*entity.Restaurant, origin geo.Point, radius float64) []nearbyCandidate {
	byID := make(map[uuid.UUID]nearbyCandidate, len(rpcRows)+len(boxRows))

	for _, row := range rpcRows {
		restaurant := row.Restaurant
		byID[restaurant.ID] = nearbyCandidate{restaurant: &restaurant, distance: row.DistanceMeters}
	}

	for _, restaurant := range boxRows {
		if !restaurant.HasCoordinates() {
			continue
		}

		distance := geo.Distance(origin, geo.Point{Lat: *restaurant.Latitude, Lng: *restaurant.Longitude})
		if distance > radius {
			// The box over-covers the circle at the corners
			continue
		}

		existing, ok := byID[restaurant.ID]
		if !ok || distance < existing.distance {
			byID[restaurant.ID] = nearbyCandidate{restaurant: restaurant, distance: distance}
		}
	}

	merged := make([]nearbyCandidate, 0, len(byID))
	for _, candidate := range byID {
		merged = append(merged, candidate)
	}

	return merged
}

// sortByDistance orders candidates by distance, then rating descending,
// then name, so ties are stable and deterministic.
func sortByDistance(candidates []nearbyCandidate) {
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		if candidates[i].restaurant.Rating != candidates[j].restaurant.Rating {
			return candidates[i].restaurant.Rating > candidates[j].restaurant.Rating
		}
		return candidates[i].restaurant.Name < candidates[j].restaurant.Name
	})
}

func toRestaurantResponses(restaurants []*entity.Restaurant) []response.RestaurantResponse {
	results := make([]response.RestaurantResponse, len(restaurants))
	for i, restaurant := range restaurants {
		results[i] = response.RestaurantToResponse(restaurant)
	}
	return results
}
