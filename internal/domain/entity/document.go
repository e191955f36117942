package entity

import (
	"path/filepath"
	"strings"
	"time"
)

// Document is a downloadable clinic document (license, certificate).
type Document struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	Title            string `gorm:"type:varchar(255);not null" json:"title"`
	FilePath         string `gorm:"type:varchar(255);not null" json:"file_path"`
	OriginalFilename string `gorm:"type:varchar(255)" json:"original_filename,omitempty"`
	Position         int    `gorm:"not null;default:0;index" json:"position"`
	Active           bool   `gorm:"not null;default:true;index" json:"active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Document) TableName() string {
	return "documents"
}

// FileExtension returns the lowercased extension without the dot.
func (d *Document) FileExtension() string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(d.FilePath), "."))
}

// FileTypeLabel is a human readable file type for the documents page.
func (d *Document) FileTypeLabel() string {
	switch ext := d.FileExtension(); ext {
	case "pdf":
		return "PDF"
	case "doc", "docx":
		return "Word"
	case "xls", "xlsx":
		return "Excel"
	case "jpg", "jpeg", "png", "webp", "gif":
		return "Изображение"
	default:
		return strings.ToUpper(ext)
	}
}

// ContentType is the MIME type used when serving the file for download.
func (d *Document) ContentType() string {
	switch d.FileExtension() {
	case "pdf":
		return "application/pdf"
	case "doc":
		return "application/msword"
	case "docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case "xls":
		return "application/vnd.ms-excel"
	case "xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "webp":
		return "image/webp"
	case "gif":
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}

// DownloadFilename is the name offered to the browser when downloading.
func (d *Document) DownloadFilename() string {
	if d.OriginalFilename != "" {
		return d.OriginalFilename
	}
	return d.Title + "." + d.FileExtension()
}
