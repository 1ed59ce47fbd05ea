package service

import (
	"context"
	"fmt"

	"github.com/campus-hub/community-service/internal/domain"
	"github.com/campus-hub/community-service/internal/repository"
)

type RoomService struct {
	rooms repository.RoomRepository
}

func NewRoomService(rooms repository.RoomRepository) *RoomService {
	return &RoomService{rooms: rooms}
}

// CreateRoom создаёт комнату с заданным именем и лимитом участников.
func (s *RoomService) CreateRoom(ctx context.Context, name string, ownerID int64, max int64) (*domain.Room, error) {
	if max <= 0 || max > 50 {
		max = 50
	}

	room := &domain.Room{
		Name:            name,
		OwnerID:         ownerID,
		MaxParticipants: max,
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("rooms.Create: %w", err)
	}
	return room, nil
}

func (s *RoomService) GetRoom(ctx context.Context, id string) (*domain.Room, error) {
	return s.rooms.Get(ctx, id)
}

// ListRooms возвращает список комнат с курсорной пагинацией.
func (s *RoomService) ListRooms(ctx context.Context, limit int, cursor string) ([]domain.Room, string, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}
	return s.rooms.List(ctx, limit, cursor)
}

func (s *RoomService) DeleteRoom(ctx context.Context, id string) error {
	return s.rooms.Delete(ctx, id)
}
