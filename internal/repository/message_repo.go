package repository

import (
	"context"

	"github.com/campus-hub/community-service/internal/domain"
)

type MessageRepository interface {
	// Save пишет сообщение и его mention-строки одной транзакцией.
	Save(ctx context.Context, msg *domain.ChatMessage) error
	History(ctx context.Context, roomID, after string, limit int) ([]domain.ChatMessage, string, error)
}
