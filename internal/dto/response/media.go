package response

type PresignUploadResponse struct {
	Bucket    string `json:"bucket"`
	Key       string `json:"key"`
	UploadURL string `json:"upload_url"`
}
