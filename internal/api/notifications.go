package api

import (
	"database/sql"
	"net/http"

	"github.com/Lucas1201-cloud/New-Vinted/internal/model"
	"github.com/Lucas1201-cloud/New-Vinted/internal/store"
)

// NotificationsHandler handles the notification feed.
type NotificationsHandler struct {
	DB *sql.DB
}

// List handles GET /api/notifications. Pass unread=true to hide read ones.
func (h *NotificationsHandler) List(w http.ResponseWriter, r *http.Request) {
	unreadOnly := r.URL.Query().Get("unread") == "true"

	list, err := store.ListNotifications(r.Context(), h.DB, unreadOnly)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list notifications")
		return
	}
	if list == nil {
		list = []model.Notification{}
	}
	jsonResponse(w, http.StatusOK, list)
}

// MarkRead handles PUT /api/notifications/{id}/read.
func (h *NotificationsHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	if err := store.MarkNotificationRead(r.Context(), h.DB, r.PathValue("id")); err != nil {
		jsonModelError(w, err, "failed to mark notification read")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "notification read"})
}
