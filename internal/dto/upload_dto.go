package dto

type UploadResponse struct {
	FileURL string `json:"fileUrl"`
}
