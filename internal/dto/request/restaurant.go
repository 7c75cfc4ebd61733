package request

// NearbyRequest parameterizes the nearby browse. Radius defaults to 2km and
// is capped at 50km; Limit caps the merged result size. Presence of the
// coordinates is enforced by the handler; `required` would reject latitude
// or longitude 0, which are valid coordinates.
type NearbyRequest struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
	RadiusM   float64 `json:"radius_m" validate:"omitempty,min=1,max=50000"`
	Limit     int     `json:"limit" validate:"omitempty,min=1,max=100"`
	Cuisine   string  `json:"cuisine,omitempty"`
}

func (r NearbyRequest) Radius() float64 {
	if r.RadiusM <= 0 {
		return 2000
	}
	return r.RadiusM
}

func (r NearbyRequest) MaxResults() int {
	if r.Limit <= 0 {
		return 20
	}
	if r.Limit > 100 {
		return 100
	}
	return r.Limit
}

type BrowseRequest struct {
	PaginatedRequest
	Cuisine string `json:"cuisine,omitempty"`
}

type SearchRequest struct {
	PaginatedRequest
	Query string `json:"query" validate:"required,min=1,max=100"`
}
