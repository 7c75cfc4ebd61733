package response

import (
	"time"

	"github.com/Tastrnet/mainversion-sub000/internal/data/entity"
)

// ProfileResponse is the public view of a user.
type ProfileResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Bio       *string   `json:"bio,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	ReviewCount    int64 `json:"review_count"`
	ListCount      int64 `json:"list_count"`
	FollowerCount  int64 `json:"follower_count"`
	FollowingCount int64 `json:"following_count"`

	// Whether the requesting user follows this profile; false for
	// anonymous requests.
	IsFollowed bool `json:"is_followed"`
}

// UserSummary is the compact form used in follower/following listings.
type UserSummary struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	AvatarURL string  `json:"avatar_url,omitempty"`
	Bio       *string `json:"bio,omitempty"`
}

func UserToSummary(user *entity.User, avatarURL string) UserSummary {
	return UserSummary{
		ID:        user.ID.String(),
		Username:  user.Username,
		AvatarURL: avatarURL,
		Bio:       user.Bio,
	}
}
