package response

import (
	"time"

	"github.com/Tastrnet/mainversion-sub000/internal/data/entity"
)

type ListResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	IsWantToTry bool      `json:"is_want_to_try"`
	EntryCount  int       `json:"entry_count"`
	LikeCount   int64     `json:"like_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListEntryResponse struct {
	Restaurant RestaurantResponse `json:"restaurant"`
	Position   int                `json:"position"`
	Note       *string            `json:"note,omitempty"`
	AddedAt    time.Time          `json:"added_at"`
}

// ListDetailResponse is a list with its ordered entries.
type ListDetailResponse struct {
	ListResponse
	Entries []ListEntryResponse `json:"entries"`

	// Whether the requesting user has liked this list; false for
	// anonymous requests.
	LikedByMe bool `json:"liked_by_me"`
}

func ListToResponse(list *entity.List, entryCount int, likeCount int64) ListResponse {
	return ListResponse{
		ID:          list.ID.String(),
		UserID:      list.UserID.String(),
		Name:        list.Name,
		Description: list.Description,
		IsWantToTry: list.IsWantToTry,
		EntryCount:  entryCount,
		LikeCount:   likeCount,
		CreatedAt:   list.CreatedAt,
	}
}
