package entity

type Restaurant struct {
	Base
	Name        string   `db:"name"`
	Address     *string  `db:"address"`
	Latitude    *float64 `db:"latitude"`
	Longitude   *float64 `db:"longitude"`
	Cuisines    []string `db:"cuisines"`
	Featured    bool     `db:"featured"`
	Rating      float64  `db:"rating"` // rollup over public reviews
	ReviewCount int64    `db:"review_count"`
}

// HasCoordinates reports whether the restaurant can take part in
// distance-based results.
func (r *Restaurant) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}
