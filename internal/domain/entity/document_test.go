package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentFileTypeLabel(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/files/license.pdf", "PDF"},
		{"/files/contract.docx", "Word"},
		{"/files/report.DOC", "Word"},
		{"/files/prices.xlsx", "Excel"},
		{"/files/scan.jpg", "Изображение"},
		{"/files/photo.PNG", "Изображение"},
		{"/files/notes.txt", "TXT"},
	}

	for _, tt := range tests {
		d := Document{FilePath: tt.path}
		assert.Equal(t, tt.want, d.FileTypeLabel(), "path %s", tt.path)
	}
}

func TestDocumentContentType(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"a.pdf", "application/pdf"},
		{"a.doc", "application/msword"},
		{"a.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		{"a.xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
		{"a.jpeg", "image/jpeg"},
		{"a.png", "image/png"},
		{"a.bin", "application/octet-stream"},
	}

	for _, tt := range tests {
		d := Document{FilePath: tt.path}
		assert.Equal(t, tt.want, d.ContentType(), "path %s", tt.path)
	}
}

func TestDocumentDownloadFilename(t *testing.T) {
	d := Document{Title: "Лицензия", FilePath: "/files/abc123.pdf"}
	assert.Equal(t, "Лицензия.pdf", d.DownloadFilename())

	d.OriginalFilename = "license-2024.pdf"
	assert.Equal(t, "license-2024.pdf", d.DownloadFilename())
}
