package response

import (
	"time"

	"github.com/Tastrnet/mainversion-sub000/internal/data/entity"
)

// ActivityResponse is one feed item. Exactly one of Review, List, or
// TargetUser is populated, matching Type.
type ActivityResponse struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Actor     UserSummary `json:"actor"`
	CreatedAt time.Time   `json:"created_at"`

	Review     *ReviewResponse `json:"review,omitempty"`
	List       *ListResponse   `json:"list,omitempty"`
	TargetUser *UserSummary    `json:"target_user,omitempty"`
}

func ActivityToResponse(activity *entity.Activity, actor UserSummary) ActivityResponse {
	return ActivityResponse{
		ID:        activity.ID.String(),
		Type:      string(activity.Type),
		Actor:     actor,
		CreatedAt: activity.CreatedAt,
	}
}
