package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/campus-hub/community-service/internal/domain"
	httpmw "github.com/campus-hub/community-service/internal/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

// POST /posts/{id}/comments
func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	var req AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid json"})
		return
	}

	c, err := h.postSvc.AddComment(r.Context(),
		chi.URLParam(r, "id"), httpmw.UserIDFromCtx(r.Context()), req.Content)
	if err != nil {
		slog.Error("handler.AddComment:", slog.Any("err", err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"id":         c.ID,
		"post_id":    c.PostID,
		"created_at": c.CreatedAt,
	})
}

// POST /posts/{id}/reactions
func (h *Handler) ToggleReaction(w http.ResponseWriter, r *http.Request) {
	var req ReactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid json"})
		return
	}
	t, ok := domain.ParseInteractionType(req.Type)
	if !ok {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "unknown interaction type"})
		return
	}

	res, err := h.interactionSvc.Toggle(r.Context(),
		chi.URLParam(r, "id"), httpmw.UserIDFromCtx(r.Context()), t)
	if err != nil {
		slog.Error("handler.ToggleReaction:", slog.Any("err", err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ToggleResponse{Result: string(res)})
}

// POST /posts/{id}/save
func (h *Handler) ToggleSave(w http.ResponseWriter, r *http.Request) {
	res, err := h.interactionSvc.ToggleSave(r.Context(),
		chi.URLParam(r, "id"), httpmw.UserIDFromCtx(r.Context()))
	if err != nil {
		slog.Error("handler.ToggleSave:", slog.Any("err", err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ToggleResponse{Result: string(res)})
}
