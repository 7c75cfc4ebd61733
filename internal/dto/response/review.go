package response

import (
	"time"

	"github.com/Tastrnet/mainversion-sub000/internal/data/entity"
)

type ReviewResponse struct {
	ID             string `json:"id"`
	UserID         string `json:"user_id"`
	Username       string `json:"username,omitempty"`
	RestaurantID   string `json:"restaurant_id"`
	RestaurantName string `json:"restaurant_name,omitempty"`

	FoodRating       *int `json:"food_rating,omitempty"`
	ServiceRating    *int `json:"service_rating,omitempty"`
	AtmosphereRating *int `json:"atmosphere_rating,omitempty"`
	ValueRating      *int `json:"value_rating,omitempty"`

	OverallRating float64   `json:"overall_rating"`
	Comment       *string   `json:"comment,omitempty"`
	VisitDate     time.Time `json:"visit_date"`
	IsPublic      bool      `json:"is_public"`
	PhotoURLs     []string  `json:"photo_urls,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func ReviewToResponse(review *entity.Review, username, restaurantName string, photoURLs []string) ReviewResponse {
	return ReviewResponse{
		ID:               review.ID.String(),
		UserID:           review.UserID.String(),
		Username:         username,
		RestaurantID:     review.RestaurantID.String(),
		RestaurantName:   restaurantName,
		FoodRating:       review.FoodRating,
		ServiceRating:    review.ServiceRating,
		AtmosphereRating: review.AtmosphereRating,
		ValueRating:      review.ValueRating,
		OverallRating:    review.OverallRating,
		Comment:          review.Comment,
		VisitDate:        review.VisitDate,
		IsPublic:         review.IsPublic,
		PhotoURLs:        photoURLs,
		CreatedAt:        review.CreatedAt,
	}
}
