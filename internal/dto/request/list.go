package request

type CreateListRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

type UpdateListRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

type AddListEntryRequest struct {
	RestaurantID string  `json:"restaurant_id" validate:"required,uuid4"`
	Note         *string `json:"note,omitempty" validate:"omitempty,max=500"`
}

type UpdateListEntryNoteRequest struct {
	Note *string `json:"note" validate:"omitempty,max=500"`
}

type ReorderListEntryRequest struct {
	Position int `json:"position" validate:"required,min=1"`
}
