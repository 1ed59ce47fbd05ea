package http

import "time"

type ErrorResponse struct {
	Error string `json:"error"`
}

type CreateRoomRequest struct {
	Name string `json:"name"`
	Max  int64  `json:"max_participants"`
}

type RoomItem struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	OwnerID         int64     `json:"owner_id"`
	MaxParticipants int64     `json:"max_participants"`
	CreatedAt       time.Time `json:"created_at"`
}

type RoomsListResponse struct {
	Items      []RoomItem `json:"items"`
	NextCursor string     `json:"next_cursor,omitempty"`
}

type MemberItem struct {
	UserID   int64     `json:"user_id"`
	Username string    `json:"username"`
	JoinedAt time.Time `json:"joined_at"`
	LastSeen time.Time `json:"last_seen"`
}

type MembersResponse struct {
	Items []MemberItem `json:"items"`
}

type SendMessageRequest struct {
	Content  string  `json:"content"`
	FilePath *string `json:"file_path,omitempty"`
}

type ChatMessageItem struct {
	ID          string    `json:"id"`
	RoomID      string    `json:"room_id"`
	SenderID    int64     `json:"sender_id"`
	Content     string    `json:"content"`
	MessageType string    `json:"message_type"`
	FilePath    *string   `json:"file_path,omitempty"`
	Mentions    []int64   `json:"mentions,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ChatHistoryResponse struct {
	Items      []ChatMessageItem `json:"items"`
	NextCursor string            `json:"next_cursor,omitempty"`
}

type AddCommentRequest struct {
	Content string `json:"content"`
}

type ReactionRequest struct {
	Type string `json:"type"` // LIKE|LOVE|CELEBRATE|SHARE
}

type ToggleResponse struct {
	Result string `json:"result"`
}

type ReviewRequest struct {
	Comment *string `json:"comment,omitempty"`
}

type GradeRequest struct {
	Score   int     `json:"score"`
	Comment *string `json:"comment,omitempty"`
}

type NotificationItem struct {
	ID                int64     `json:"id"`
	Type              string    `json:"type"`
	Message           string    `json:"message"`
	RelatedEntityType string    `json:"related_entity_type"`
	RelatedEntityID   string    `json:"related_entity_id"`
	IsRead            bool      `json:"is_read"`
	CreatedAt         time.Time `json:"created_at"`
}

type NotificationsResponse struct {
	Items      []NotificationItem `json:"items"`
	NextCursor string             `json:"next_cursor,omitempty"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
