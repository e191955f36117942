package dto

import "time"

type CreateDocumentRequest struct {
	Title            string `json:"title" validate:"required"`
	FilePath         string `json:"file_path" validate:"required"`
	OriginalFilename string `json:"original_filename" validate:"omitempty"`
	Position         int    `json:"position" validate:"omitempty,gte=0"`
	Active           *bool  `json:"active" validate:"omitempty"`
}

type UpdateDocumentRequest struct {
	Title            string `json:"title" validate:"required"`
	FilePath         string `json:"file_path" validate:"required"`
	OriginalFilename string `json:"original_filename" validate:"omitempty"`
	Position         int    `json:"position" validate:"omitempty,gte=0"`
	Active           *bool  `json:"active" validate:"omitempty"`
}

type DocumentResponse struct {
	ID               uint      `json:"id"`
	Title            string    `json:"title"`
	FilePath         string    `json:"file_path"`
	FileTypeLabel    string    `json:"file_type_label"`
	ContentType      string    `json:"content_type"`
	DownloadFilename string    `json:"download_filename"`
	Position         int       `json:"position"`
	Active           bool      `json:"active"`
	CreatedAt        time.Time `json:"created_at"`
}

type DocumentListResponse struct {
	Documents []DocumentResponse `json:"documents"`
	Total     int                `json:"total"`
}
