package repository

import (
	"context"

	"github.com/campus-hub/community-service/internal/domain"
)

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	Get(ctx context.Context, id string) (*domain.Room, error)
	List(ctx context.Context, limit int, cursor string) ([]domain.Room, string, error)
	Delete(ctx context.Context, id string) error
}
