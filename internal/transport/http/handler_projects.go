package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	httpmw "github.com/campus-hub/community-service/internal/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

// POST /projects/{id}/approve
func (h *Handler) ApproveProject(w http.ResponseWriter, r *http.Request) {
	var req ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid json"})
		return
	}

	err := h.reviewSvc.Approve(r.Context(),
		chi.URLParam(r, "id"), httpmw.UserIDFromCtx(r.Context()), req.Comment)
	if err != nil {
		slog.Error("handler.ApproveProject:", slog.Any("err", err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "approved"})
}

// POST /projects/{id}/reject
func (h *Handler) RejectProject(w http.ResponseWriter, r *http.Request) {
	var req ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid json"})
		return
	}

	err := h.reviewSvc.Reject(r.Context(),
		chi.URLParam(r, "id"), httpmw.UserIDFromCtx(r.Context()), req.Comment)
	if err != nil {
		slog.Error("handler.RejectProject:", slog.Any("err", err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "rejected"})
}

// POST /projects/{id}/grade
func (h *Handler) GradeProject(w http.ResponseWriter, r *http.Request) {
	var req GradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid json"})
		return
	}
	if req.Score < 0 || req.Score > 100 {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "score must be within 0..100"})
		return
	}

	err := h.reviewSvc.Grade(r.Context(),
		chi.URLParam(r, "id"), httpmw.UserIDFromCtx(r.Context()), req.Score, req.Comment)
	if err != nil {
		slog.Error("handler.GradeProject:", slog.Any("err", err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "graded"})
}
