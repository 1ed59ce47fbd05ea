package domain

import "time"

const (
	MessageTypeText = "text"
	MessageTypeFile = "file"
)

type ChatMessage struct {
	ID          string    `db:"id"`
	RoomID      string    `db:"room_id"`
	SenderID    int64     `db:"sender_id"`
	Content     string    `db:"content"`
	MessageType string    `db:"message_type"`
	FilePath    *string   `db:"file_path"`
	IsDeleted   bool      `db:"is_deleted"`
	CreatedAt   time.Time `db:"created_at"`

	// Заполняется конвейером на этапе enrich; в строку сообщения не пишется,
	// хранится отдельными строками mentions.
	MentionedUserIDs []int64 `db:"-"`
}
