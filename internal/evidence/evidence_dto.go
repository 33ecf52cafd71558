package evidence

import "time"

type UploadRequest struct {
	Kind  string `json:"kind" binding:"required,oneof=location biometric"`
	Photo string `json:"photo" binding:"required"`
}

type FileResponse struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	FileName    string    `json:"file_name"`
	FileURL     string    `json:"file_url"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`
}

func mapToResponse(f *File) FileResponse {
	return FileResponse{
		ID:          f.ID.String(),
		Kind:        string(f.Kind),
		FileName:    f.FileName,
		FileURL:     f.FileURL,
		ContentType: f.ContentType,
		SizeBytes:   f.SizeBytes,
		CreatedAt:   f.CreatedAt,
	}
}
