package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/delivery/http/middleware"
	"clinic-backend/internal/usecase"
	"clinic-backend/pkg/response"
	"clinic-backend/pkg/validator"
)

type MessageHandler struct {
	messageUsecase usecase.MessageUsecase
	validator      *validator.CustomValidator
}

func NewMessageHandler(messageUsecase usecase.MessageUsecase, validator *validator.CustomValidator) *MessageHandler {
	return &MessageHandler{
		messageUsecase: messageUsecase,
		validator:      validator,
	}
}

// CreateMessage handles the public contact form. It accepts a JSON body
// or classic form fields.
func (h *MessageHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMessageRequest
	if isJSONRequest(r) {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body")
			return
		}
	} else {
		req.Name = r.FormValue("name")
		req.Phone = r.FormValue("phone")
		req.Email = r.FormValue("email")
		req.Subject = r.FormValue("subject")
		req.Message = r.FormValue("message")
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	message, err := h.messageUsecase.CreateMessage(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create message")
		return
	}

	response.Success(w, http.StatusCreated, "Message created successfully", message)
}

func (h *MessageHandler) GetAllMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.messageUsecase.GetAllMessages(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get messages")
		return
	}

	response.Success(w, http.StatusOK, "Messages retrieved successfully", messages)
}

func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.messageUsecase.MarkRead, "Message marked as read")
}

func (h *MessageHandler) MarkReplied(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.messageUsecase.MarkReplied, "Message marked as replied")
}

func (h *MessageHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.messageUsecase.DeleteMessage, "Message deleted successfully")
}

func (h *MessageHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, messageID uint, actor string) error,
	message string,
) {
	messageID, err := parseIDParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid message ID")
		return
	}

	actor, _ := middleware.GetAdminUserFromContext(r.Context())
	if err := apply(r.Context(), messageID, actor); err != nil {
		switch err {
		case usecase.ErrMessageNotFound:
			response.NotFound(w, "Message not found")
		default:
			response.InternalServerError(w, "Failed to update message")
		}
		return
	}

	response.Success(w, http.StatusOK, message, nil)
}
