package entity

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	BaseNoDelete
	UserID       uuid.UUID `db:"user_id"`
	RestaurantID uuid.UUID `db:"restaurant_id"`

	// Sub-ratings are each 1-5; nil means not rated on that axis
	FoodRating       *int `db:"food_rating"`
	ServiceRating    *int `db:"service_rating"`
	AtmosphereRating *int `db:"atmosphere_rating"`
	ValueRating      *int `db:"value_rating"`

	OverallRating float64   `db:"overall_rating"`
	Comment       *string   `db:"comment"`
	VisitDate     time.Time `db:"visit_date"`
	IsPublic      bool      `db:"is_public"`
	PhotoKeys     []string  `db:"photo_keys"` // objects in the review-photos bucket
}

// SubRatings returns the sub-ratings that were actually provided.
func (r *Review) SubRatings() []int {
	var ratings []int
	for _, v := range []*int{r.FoodRating, r.ServiceRating, r.AtmosphereRating, r.ValueRating} {
		if v != nil {
			ratings = append(ratings, *v)
		}
	}
	return ratings
}
