package http

import (
	"log/slog"
	"net/http"
	"strconv"

	httpmw "github.com/campus-hub/community-service/internal/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

// GET /notifications?limit=&cursor=
func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	userID := httpmw.UserIDFromCtx(r.Context())

	items, next, err := h.notifSvc.List(r.Context(), userID, queryLimit(r, 20), r.URL.Query().Get("cursor"))
	if err != nil {
		slog.Error("handler.ListNotifications:", slog.Any("err", err))
		writeError(w, err)
		return
	}
	resp := NotificationsResponse{Items: make([]NotificationItem, 0, len(items)), NextCursor: next}
	for _, n := range items {
		resp.Items = append(resp.Items, NotificationItem{
			ID:                n.ID,
			Type:              n.Type,
			Message:           n.Message,
			RelatedEntityType: n.RelatedEntityType,
			RelatedEntityID:   n.RelatedEntityID,
			IsRead:            n.IsRead,
			CreatedAt:         n.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// GET /notifications/unread-count
func (h *Handler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.notifSvc.UnreadCount(r.Context(), httpmw.UserIDFromCtx(r.Context()))
	if err != nil {
		slog.Error("handler.UnreadCount:", slog.Any("err", err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, UnreadCountResponse{Count: count})
}

// POST /notifications/{id}/read
func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid notification id"})
		return
	}

	if err := h.notifSvc.MarkRead(r.Context(), id, httpmw.UserIDFromCtx(r.Context())); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "read"})
}

// POST /notifications/read-all
func (h *Handler) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	if err := h.notifSvc.MarkAllRead(r.Context(), httpmw.UserIDFromCtx(r.Context())); err != nil {
		slog.Error("handler.MarkAllNotificationsRead:", slog.Any("err", err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "read"})
}

// DELETE /notifications/{id}
func (h *Handler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid notification id"})
		return
	}

	if err := h.notifSvc.Delete(r.Context(), id, httpmw.UserIDFromCtx(r.Context())); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
