package domain

import "time"

// Типы уведомлений; related_entity_type указывает, на что ссылается RelatedID.
const (
	NotificationRoomMessage   = "room_message"
	NotificationRoomJoined    = "room_joined"
	NotificationMention       = "mention"
	NotificationPostComment   = "post_comment"
	NotificationPostReaction  = "post_reaction"
	NotificationProjectReview = "project_review"
)

const (
	RelatedPost    = "post"
	RelatedMessage = "message"
	RelatedRoom    = "room"
	RelatedProject = "project"
)

// Notification — append-only; после создания меняется только is_read.
// Создаётся исключительно консьюмерами уведомлений, не продюсерами.
type Notification struct {
	ID                int64     `db:"id"`
	RecipientID       int64     `db:"recipient_id"`
	Type              string    `db:"type"`
	Message           string    `db:"message"`
	RelatedEntityType string    `db:"related_entity_type"`
	RelatedEntityID   string    `db:"related_entity_id"`
	IsRead            bool      `db:"is_read"`
	CreatedAt         time.Time `db:"created_at"`
}
