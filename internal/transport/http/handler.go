package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/campus-hub/community-service/internal/domain"
	"github.com/campus-hub/community-service/internal/repository"
	"github.com/campus-hub/community-service/internal/repository/postgres"
	"github.com/campus-hub/community-service/internal/service"
	httpmw "github.com/campus-hub/community-service/internal/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	roomSvc        *service.RoomService
	memberSvc      *service.MemberService
	chatSvc        *service.ChatService
	postSvc        *service.PostService
	interactionSvc *service.InteractionService
	reviewSvc      *service.ReviewService
	notifSvc       *service.NotificationService
}

func NewHandler(
	room *service.RoomService,
	member *service.MemberService,
	chat *service.ChatService,
	post *service.PostService,
	interaction *service.InteractionService,
	review *service.ReviewService,
	notif *service.NotificationService,
) *Handler {
	return &Handler{
		roomSvc:        room,
		memberSvc:      member,
		chatSvc:        chat,
		postSvc:        post,
		interactionSvc: interaction,
		reviewSvc:      review,
		notifSvc:       notif,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError — единое сопоставление доменных ошибок статусам.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, postgres.ErrInvalidCursor):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotMember):
		writeJSON(w, http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrRoomNotFound),
		errors.Is(err, domain.ErrPostNotFound),
		errors.Is(err, domain.ErrProjectNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrNotInRoom),
		errors.Is(err, repository.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrRoomFull), errors.Is(err, domain.ErrAlreadyJoined):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}

func queryLimit(r *http.Request, def int) int {
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	return def
}

// POST /rooms
func (h *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid json"})
		return
	}
	ownerID := httpmw.UserIDFromCtx(r.Context())

	room, err := h.roomSvc.CreateRoom(r.Context(), req.Name, ownerID, req.Max)
	if err != nil {
		slog.Error("handler.CreateRoom:", slog.Any("err", err))
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toRoomItem(room))
}

// GET /rooms?limit=&cursor=
func (h *Handler) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, next, err := h.roomSvc.ListRooms(r.Context(), queryLimit(r, 20), r.URL.Query().Get("cursor"))
	if err != nil {
		slog.Error("handler.ListRooms:", slog.Any("err", err))
		writeError(w, err)
		return
	}
	resp := RoomsListResponse{Items: make([]RoomItem, 0, len(rooms)), NextCursor: next}
	for i := range rooms {
		resp.Items = append(resp.Items, toRoomItem(&rooms[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GET /rooms/{id}
func (h *Handler) GetRoom(w http.ResponseWriter, r *http.Request) {
	room, err := h.roomSvc.GetRoom(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRoomItem(room))
}

// POST /rooms/{id}/join
func (h *Handler) JoinRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	userID := httpmw.UserIDFromCtx(r.Context())

	if _, err := h.memberSvc.JoinRoom(r.Context(), roomID, userID); err != nil {
		// повторный join — не ошибка для клиента
		if !errors.Is(err, domain.ErrAlreadyJoined) {
			slog.Error("handler.JoinRoom:", slog.Any("err", err))
			writeError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "joined", "room_id": roomID})
}

// POST /rooms/{id}/leave
func (h *Handler) LeaveRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	userID := httpmw.UserIDFromCtx(r.Context())

	if err := h.memberSvc.LeaveRoom(r.Context(), roomID, userID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "left"})
}

// GET /rooms/{id}/members
func (h *Handler) GetMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.memberSvc.ListMembers(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("handler.GetMembers:", slog.Any("err", err))
		writeError(w, err)
		return
	}
	resp := MembersResponse{Items: make([]MemberItem, 0, len(members))}
	for _, m := range members {
		resp.Items = append(resp.Items, MemberItem{
			UserID:   m.UserID,
			Username: m.Username,
			JoinedAt: m.JoinedAt,
			LastSeen: m.LastSeen,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// POST /rooms/{id}/chat
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid json"})
		return
	}

	msg, err := h.chatSvc.Send(r.Context(), service.SendMessageInput{
		RoomID:   chi.URLParam(r, "id"),
		SenderID: httpmw.UserIDFromCtx(r.Context()),
		Content:  req.Content,
		FilePath: req.FilePath,
	})
	if err != nil {
		slog.Error("handler.SendMessage:", slog.Any("err", err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMessageItem(msg))
}

// GET /rooms/{id}/chat?after=&limit=
func (h *Handler) GetChatHistory(w http.ResponseWriter, r *http.Request) {
	items, next, err := h.chatSvc.History(r.Context(),
		chi.URLParam(r, "id"), r.URL.Query().Get("after"), queryLimit(r, 50))
	if err != nil {
		slog.Error("handler.GetChatHistory:", slog.Any("err", err))
		writeError(w, err)
		return
	}
	resp := ChatHistoryResponse{Items: make([]ChatMessageItem, 0, len(items)), NextCursor: next}
	for i := range items {
		resp.Items = append(resp.Items, toMessageItem(&items[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func toRoomItem(rm *domain.Room) RoomItem {
	return RoomItem{
		ID:              rm.ID,
		Name:            rm.Name,
		OwnerID:         rm.OwnerID,
		MaxParticipants: rm.MaxParticipants,
		CreatedAt:       rm.CreatedAt,
	}
}

func toMessageItem(m *domain.ChatMessage) ChatMessageItem {
	return ChatMessageItem{
		ID:          m.ID,
		RoomID:      m.RoomID,
		SenderID:    m.SenderID,
		Content:     m.Content,
		MessageType: m.MessageType,
		FilePath:    m.FilePath,
		Mentions:    m.MentionedUserIDs,
		CreatedAt:   m.CreatedAt,
	}
}
