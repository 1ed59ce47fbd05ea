package service

import (
	"context"

	"github.com/campus-hub/community-service/internal/domain"
	"github.com/campus-hub/community-service/internal/repository"
)

// RoomDirectory — контекст комнат для роутера событий (члены, владелец).
// Отдельный тип, чтобы не завязывать роутер на сервисы, которые сами
// публикуют события через него.
type RoomDirectory struct {
	rooms   repository.RoomRepository
	members repository.MemberRepository
}

func NewRoomDirectory(rooms repository.RoomRepository, members repository.MemberRepository) *RoomDirectory {
	return &RoomDirectory{rooms: rooms, members: members}
}

func (d *RoomDirectory) Members(ctx context.Context, roomID string) ([]domain.Member, error) {
	return d.members.ListByRoom(ctx, roomID)
}

func (d *RoomDirectory) Owner(ctx context.Context, roomID string) (int64, error) {
	room, err := d.rooms.Get(ctx, roomID)
	if err != nil {
		return 0, err
	}
	return room.OwnerID, nil
}
