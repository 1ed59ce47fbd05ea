package repository

import (
	"context"

	"github.com/campus-hub/community-service/internal/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByRecipient(ctx context.Context, recipientID int64, limit int, cursor string) ([]domain.Notification, string, error)
	CountUnread(ctx context.Context, recipientID int64) (int64, error)
	MarkRead(ctx context.Context, id, recipientID int64) error
	MarkAllRead(ctx context.Context, recipientID int64) error
	Delete(ctx context.Context, id, recipientID int64) error
}
