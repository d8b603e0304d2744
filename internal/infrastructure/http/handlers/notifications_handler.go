package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/prasanth-t0205/techblog/internal/application/ports"
	"github.com/prasanth-t0205/techblog/internal/infrastructure/http/middleware"
)

type NotificationsHandler struct {
	notifications ports.NotificationRepository
	log           zerolog.Logger
}

func NewNotificationsHandler(notifications ports.NotificationRepository, log zerolog.Logger) *NotificationsHandler {
	return &NotificationsHandler{notifications: notifications, log: log}
}

// List returns the caller's notifications, newest first, then marks
// them all read.
func (h *NotificationsHandler) List(w http.ResponseWriter, r *http.Request) {
	current := middleware.AuthUserFromContext(r.Context())
	list, err := h.notifications.ListByRecipient(r.Context(), current.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("list notifications")
		writeErr(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if err := h.notifications.MarkAllRead(r.Context(), current.ID); err != nil {
		h.log.Error().Err(err).Msg("mark notifications read")
		writeErr(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, newNotificationListResponse(list))
}

func (h *NotificationsHandler) Clear(w http.ResponseWriter, r *http.Request) {
	current := middleware.AuthUserFromContext(r.Context())
	if err := h.notifications.DeleteAll(r.Context(), current.ID); err != nil {
		h.log.Error().Err(err).Msg("delete notifications")
		writeErr(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeMessage(w, http.StatusOK, "Notifications deleted successfully")
}
