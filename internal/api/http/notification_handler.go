package http

import (
	"fmt"
	"net/http"
	"strconv"

	"equipbid-backend/internal/domain"
	"equipbid-backend/internal/service"
)

// NotificationHandler exposes the in-app notification feed over HTTP
type NotificationHandler struct {
	noteSvc service.NotificationService
}

func NewNotificationHandler(noteSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{noteSvc: noteSvc}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := queryID(r, "user_id")
	if err != nil {
		writeError(w, err)
		return
	}

	page := int32(1)
	pageSize := int32(20)
	if v := r.URL.Query().Get("page"); v != "" {
		if p, err := strconv.ParseInt(v, 10, 32); err == nil && p > 0 {
			page = int32(p)
		}
	}
	if v := r.URL.Query().Get("page_size"); v != "" {
		if p, err := strconv.ParseInt(v, 10, 32); err == nil && p > 0 {
			pageSize = int32(p)
		}
	}

	notes, total, err := h.noteSvc.GetNotifications(r.Context(), userID, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"notifications": notes, "total": total})
}

func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	userID, err := queryID(r, "user_id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.noteSvc.MarkAsRead(r.Context(), userID, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func queryID(r *http.Request, name string) (int32, error) {
	raw := r.URL.Query().Get(name)
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s", domain.ErrValidation, name)
	}
	return int32(id), nil
}
