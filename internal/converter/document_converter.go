package converter

import (
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
)

func DocumentToResponse(document *entity.Document) *dto.DocumentResponse {
	if document == nil {
		return nil
	}
	return &dto.DocumentResponse{
		ID:               document.ID,
		Title:            document.Title,
		FilePath:         document.FilePath,
		FileTypeLabel:    document.FileTypeLabel(),
		ContentType:      document.ContentType(),
		DownloadFilename: document.DownloadFilename(),
		Position:         document.Position,
		Active:           document.Active,
		CreatedAt:        document.CreatedAt,
	}
}

func DocumentsToResponses(documents []entity.Document) []dto.DocumentResponse {
	responses := make([]dto.DocumentResponse, len(documents))
	for i := range documents {
		responses[i] = *DocumentToResponse(&documents[i])
	}
	return responses
}
