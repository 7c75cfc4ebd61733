package request

type CreateReviewRequest struct {
	RestaurantID string `json:"restaurant_id" validate:"required,uuid4"`

	FoodRating       *int `json:"food_rating,omitempty" validate:"omitempty,min=1,max=5"`
	ServiceRating    *int `json:"service_rating,omitempty" validate:"omitempty,min=1,max=5"`
	AtmosphereRating *int `json:"atmosphere_rating,omitempty" validate:"omitempty,min=1,max=5"`
	ValueRating      *int `json:"value_rating,omitempty" validate:"omitempty,min=1,max=5"`

	Comment   *string  `json:"comment,omitempty" validate:"omitempty,max=2000"`
	VisitDate string   `json:"visit_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	IsPublic  *bool    `json:"is_public,omitempty"`
	PhotoKeys []string `json:"photo_keys,omitempty" validate:"omitempty,max=10,dive,max=255"`
}

type UpdateReviewRequest struct {
	FoodRating       *int `json:"food_rating,omitempty" validate:"omitempty,min=1,max=5"`
	ServiceRating    *int `json:"service_rating,omitempty" validate:"omitempty,min=1,max=5"`
	AtmosphereRating *int `json:"atmosphere_rating,omitempty" validate:"omitempty,min=1,max=5"`
	ValueRating      *int `json:"value_rating,omitempty" validate:"omitempty,min=1,max=5"`

	Comment   *string  `json:"comment,omitempty" validate:"omitempty,max=2000"`
	VisitDate *string  `json:"visit_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	IsPublic  *bool    `json:"is_public,omitempty"`
	PhotoKeys []string `json:"photo_keys,omitempty" validate:"omitempty,max=10,dive,max=255"`
}
