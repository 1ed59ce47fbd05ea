package repository

import (
	"context"

	"github.com/campus-hub/community-service/internal/domain"
)

type MemberRepository interface {
	Join(ctx context.Context, m *domain.Member, maxParticipants int64) error
	Leave(ctx context.Context, roomID string, userID int64) error
	Exists(ctx context.Context, roomID string, userID int64) (bool, error)
	ListByRoom(ctx context.Context, roomID string) ([]domain.Member, error)
	TouchHeartbeat(ctx context.Context, roomID string, userID int64) error
}
