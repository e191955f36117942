package converter

import (
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
)

func MessageToResponse(message *entity.Message) *dto.MessageResponse {
	if message == nil {
		return nil
	}
	return &dto.MessageResponse{
		ID:         message.ID,
		Name:       message.Name,
		Phone:      message.Phone,
		Email:      message.Email,
		Subject:    message.Subject,
		Message:    message.Message,
		Status:     string(message.Status),
		StatusText: message.StatusText(),
		CreatedAt:  message.CreatedAt,
	}
}

func MessagesToResponses(messages []entity.Message) []dto.MessageResponse {
	responses := make([]dto.MessageResponse, len(messages))
	for i := range messages {
		responses[i] = *MessageToResponse(&messages[i])
	}
	return responses
}
