package notify

import (
	"context"
	"fmt"

	"github.com/campus-hub/community-service/internal/domain"
	"github.com/campus-hub/community-service/internal/events"
)

// Решения по проекту адресованы студенту; подавление не нужно —
// профессор и студент всегда разные акторы.
func (s *Sink) handleProjectReviewed(event string) events.HandlerFunc {
	return func(ctx context.Context, p events.Payload) error {
		var msg string
		switch event {
		case events.EventProjectApproved:
			msg = "Your project has been approved"
		case events.EventProjectRejected:
			msg = "Your project has been rejected"
		case events.EventProjectGraded:
			msg = fmt.Sprintf("Your project has been graded: %d/100", p.I64("score"))
		}

		return s.notifications.Create(ctx, &domain.Notification{
			RecipientID:       p.I64("student_id"),
			Type:              domain.NotificationProjectReview,
			Message:           msg,
			RelatedEntityType: domain.RelatedProject,
			RelatedEntityID:   p.Str("project_id"),
		})
	}
}
