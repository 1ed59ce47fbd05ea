package service

import (
	"context"

	"github.com/campus-hub/community-service/internal/domain"
	"github.com/campus-hub/community-service/internal/repository"
)

// NotificationService — read-API ленты уведомлений для UI.
// Записи создаёт только notify.Sink.
type NotificationService struct {
	notifications repository.NotificationRepository
}

func NewNotificationService(notifications repository.NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

func (s *NotificationService) List(ctx context.Context, recipientID int64, limit int, cursor string) ([]domain.Notification, string, error) {
	return s.notifications.ListByRecipient(ctx, recipientID, limit, cursor)
}

func (s *NotificationService) UnreadCount(ctx context.Context, recipientID int64) (int64, error) {
	return s.notifications.CountUnread(ctx, recipientID)
}

func (s *NotificationService) MarkRead(ctx context.Context, id, recipientID int64) error {
	return s.notifications.MarkRead(ctx, id, recipientID)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, recipientID int64) error {
	return s.notifications.MarkAllRead(ctx, recipientID)
}

func (s *NotificationService) Delete(ctx context.Context, id, recipientID int64) error {
	return s.notifications.Delete(ctx, id, recipientID)
}
