package notify

import (
	"context"
	"fmt"

	"github.com/campus-hub/community-service/internal/domain"
	"github.com/campus-hub/community-service/internal/events"
)

// room.message уже разложено роутером по получателям, отправитель исключён.
func (s *Sink) handleRoomMessage(ctx context.Context, p events.Payload) error {
	return s.notifications.Create(ctx, &domain.Notification{
		RecipientID:       p.I64("recipient_id"),
		Type:              domain.NotificationRoomMessage,
		Message:           fmt.Sprintf("%s sent a message in %s", p.Str("sender_name"), p.Str("room_name")),
		RelatedEntityType: domain.RelatedRoom,
		RelatedEntityID:   p.Str("room_id"),
	})
}

// room.joined уходит только владельцу комнаты.
func (s *Sink) handleRoomJoined(ctx context.Context, p events.Payload) error {
	return s.notifications.Create(ctx, &domain.Notification{
		RecipientID:       p.I64("recipient_id"),
		Type:              domain.NotificationRoomJoined,
		Message:           fmt.Sprintf("%s joined your room %s", p.Str("user_name"), p.Str("room_name")),
		RelatedEntityType: domain.RelatedRoom,
		RelatedEntityID:   p.Str("room_id"),
	})
}

// user.mentioned: одна доставка на получателя; автор, упомянувший себя,
// отфильтрован роутером.
func (s *Sink) handleMention(ctx context.Context, p events.Payload) error {
	return s.notifications.Create(ctx, &domain.Notification{
		RecipientID:       p.I64("recipient_id"),
		Type:              domain.NotificationMention,
		Message:           fmt.Sprintf("%s mentioned you", p.Str("author_name")),
		RelatedEntityType: p.Str("content_type"),
		RelatedEntityID:   p.Str("content_id"),
	})
}
