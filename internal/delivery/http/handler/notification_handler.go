package handler

import (
	"net/http"

	"clinic-backend/internal/service"
	"clinic-backend/pkg/response"
)

type NotificationHandler struct {
	notifications *service.NotificationService
}

func NewNotificationHandler(notifications *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notifications: notifications,
	}
}

// GetCounts returns the unread message and new appointment counters shown
// in the admin panel header.
func (h *NotificationHandler) GetCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.notifications.Counts(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get notification counts")
		return
	}

	response.Success(w, http.StatusOK, "Notification counts retrieved successfully", counts)
}
