package notify

import (
	"context"
	"fmt"

	"github.com/campus-hub/community-service/internal/domain"
	"github.com/campus-hub/community-service/internal/events"
)

func (s *Sink) handlePostCommented(ctx context.Context, p events.Payload) error {
	// Свой комментарий под своим постом не уведомляется.
	if p.I64("commenter_id") == p.I64("post_author_id") {
		return nil
	}
	return s.notifications.Create(ctx, &domain.Notification{
		RecipientID:       p.I64("post_author_id"),
		Type:              domain.NotificationPostComment,
		Message:           fmt.Sprintf("%s commented on your post", p.Str("commenter_name")),
		RelatedEntityType: domain.RelatedPost,
		RelatedEntityID:   p.Str("post_id"),
	})
}

func (s *Sink) handlePostInteraction(ctx context.Context, p events.Payload) error {
	// Реакция на собственный пост не уведомляется.
	if p.I64("user_id") == p.I64("post_author_id") {
		return nil
	}
	return s.notifications.Create(ctx, &domain.Notification{
		RecipientID:       p.I64("post_author_id"),
		Type:              domain.NotificationPostReaction,
		Message:           fmt.Sprintf("%s %s your post", p.Str("user_name"), reactionVerb(p.Str("interaction_type"))),
		RelatedEntityType: domain.RelatedPost,
		RelatedEntityID:   p.Str("post_id"),
	})
}

func reactionVerb(t string) string {
	switch domain.InteractionType(t) {
	case domain.InteractionLike:
		return "liked"
	case domain.InteractionLove:
		return "loved"
	case domain.InteractionCelebrate:
		return "celebrated"
	case domain.InteractionShare:
		return "shared"
	}
	return "reacted to"
}
