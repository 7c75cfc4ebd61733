package request

type PresignUploadRequest struct {
	Bucket      string `json:"bucket" validate:"required,oneof=avatars review-photos"`
	ContentType string `json:"content_type" validate:"required,oneof=image/jpeg image/png image/webp"`
}
