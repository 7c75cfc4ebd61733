package response

import (
	"github.com/Tastrnet/mainversion-sub000/internal/data/entity"
)

type RestaurantResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Address     *string  `json:"address,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Cuisines    []string `json:"cuisines,omitempty"`
	Featured    bool     `json:"featured"`
	Rating      float64  `json:"rating"`
	ReviewCount int64    `json:"review_count"`
}

// NearbyRestaurantResponse adds the distance from the query point.
type NearbyRestaurantResponse struct {
	RestaurantResponse
	DistanceMeters float64 `json:"distance_meters"`
}

// CuisineResponse is one selectable cuisine with its parent categories.
type CuisineResponse struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Parents []string `json:"parents,omitempty"`
}

func CuisineToResponse(cuisine *entity.Cuisine) CuisineResponse {
	return CuisineResponse{
		ID:      cuisine.ID.String(),
		Name:    cuisine.Name,
		Parents: cuisine.Parents(),
	}
}

type RestaurantStats struct {
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}

func RestaurantToResponse(restaurant *entity.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:          restaurant.ID.String(),
		Name:        restaurant.Name,
		Address:     restaurant.Address,
		Latitude:    restaurant.Latitude,
		Longitude:   restaurant.Longitude,
		Cuisines:    restaurant.Cuisines,
		Featured:    restaurant.Featured,
		Rating:      restaurant.Rating,
		ReviewCount: restaurant.ReviewCount,
	}
}

func NearbyToResponse(restaurant *entity.Restaurant, distanceMeters float64) NearbyRestaurantResponse {
	return NearbyRestaurantResponse{
		RestaurantResponse: RestaurantToResponse(restaurant),
		DistanceMeters:     distanceMeters,
	}
}
