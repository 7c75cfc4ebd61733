package request

type UpdateProfileRequest struct {
	Bio       *string `json:"bio,omitempty" validate:"omitempty,max=500"`
	AvatarKey *string `json:"avatar_key,omitempty" validate:"omitempty,max=255"`
}
