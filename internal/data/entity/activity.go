package entity

import "github.com/google/uuid"

type ActivityType string

const (
	ActivityReviewCreated ActivityType = "review_created"
	ActivityListCreated   ActivityType = "list_created"
	ActivityListLiked     ActivityType = "list_liked"
	ActivityFollowedUser  ActivityType = "followed_user"
)

// Activity is a typed event in a user's outbound feed. Exactly one of the
// reference fields is set, depending on Type.
type Activity struct {
	BaseSimple
	UserID       uuid.UUID    `db:"user_id"`
	Type         ActivityType `db:"type"`
	ReviewID     *uuid.UUID   `db:"review_id"`
	ListID       *uuid.UUID   `db:"list_id"`
	TargetUserID *uuid.UUID   `db:"target_user_id"`
}
