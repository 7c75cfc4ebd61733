package entity

import (
	"time"

	"github.com/google/uuid"
)

// Follower is a directed edge: follower follows followee.
type Follower struct {
	ID         uuid.UUID `db:"id"`
	FollowerID uuid.UUID `db:"follower_id"`
	FolloweeID uuid.UUID `db:"followee_id"`
	CreatedAt  time.Time `db:"created_at"`
}
