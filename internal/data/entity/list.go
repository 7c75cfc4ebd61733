package entity

import (
	"time"

	"github.com/google/uuid"
)

// WantToTryName is the reserved name of the per-user saved-restaurant list.
const WantToTryName = "Want to try"

type List struct {
	BaseNoDelete
	UserID      uuid.UUID `db:"user_id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	IsWantToTry bool      `db:"is_want_to_try"`
}

// ListRestaurant is one entry of a list. Positions within a list form a
// contiguous 1..n sequence.
type ListRestaurant struct {
	ID           uuid.UUID `db:"id"`
	ListID       uuid.UUID `db:"list_id"`
	RestaurantID uuid.UUID `db:"restaurant_id"`
	Position     int       `db:"position"`
	Note         *string   `db:"note"`
	AddedAt      time.Time `db:"added_at"`
}

type ListLike struct {
	ID        uuid.UUID `db:"id"`
	ListID    uuid.UUID `db:"list_id"`
	UserID    uuid.UUID `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}
