package notify

import (
	"github.com/campus-hub/community-service/internal/events"
	"github.com/campus-hub/community-service/internal/repository"
)

// Sink — консьюмеры, превращающие события роутера в строки уведомлений.
// Единственный писатель таблицы notifications. Каждый обработчик пишет
// независимо: сбой одного не мешает другим получателям.
type Sink struct {
	notifications repository.NotificationRepository
}

func NewSink(notifications repository.NotificationRepository) *Sink {
	return &Sink{notifications: notifications}
}

// Register собирает таблицу событие→обработчик. Вызывается один раз на старте.
func (s *Sink) Register(r *events.Router) {
	r.Register(events.EventRoomMessage, s.handleRoomMessage)
	r.Register(events.EventRoomJoined, s.handleRoomJoined)
	r.Register(events.EventUserMentioned, s.handleMention)
	r.Register(events.EventPostCommented, s.handlePostCommented)
	r.Register(events.EventPostInteraction, s.handlePostInteraction)
	r.Register(events.EventProjectApproved, s.handleProjectReviewed(events.EventProjectApproved))
	r.Register(events.EventProjectRejected, s.handleProjectReviewed(events.EventProjectRejected))
	r.Register(events.EventProjectGraded, s.handleProjectReviewed(events.EventProjectGraded))
}
