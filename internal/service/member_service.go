package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/campus-hub/community-service/internal/domain"
	"github.com/campus-hub/community-service/internal/events"
	"github.com/campus-hub/community-service/internal/repository"
)

type MemberService struct {
	rooms   repository.RoomRepository
	members repository.MemberRepository
	users   repository.UserRepository
	router  *events.Router

	heartbeatWindow time.Duration
}

func NewMemberService(
	rooms repository.RoomRepository,
	members repository.MemberRepository,
	users repository.UserRepository,
	router *events.Router,
) *MemberService {
	return &MemberService{
		rooms:           rooms,
		members:         members,
		users:           users,
		router:          router,
		heartbeatWindow: 60 * time.Second, // окно «онлайн»
	}
}

func (s *MemberService) SetHeartbeatWindow(d time.Duration) {
	if d > 0 {
		s.heartbeatWindow = d
	}
}

func (s *MemberService) JoinRoom(ctx context.Context, roomID string, userID int64) (*domain.Member, error) {
	room, err := s.rooms.Get(ctx, roomID)
	if err != nil {
		return nil, err
	}

	exists, err := s.members.Exists(ctx, roomID, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyJoined
	}

	m := &domain.Member{
		RoomID:   roomID,
		UserID:   userID,
		JoinedAt: time.Now(),
		LastSeen: time.Now(),
	}
	if err := s.members.Join(ctx, m, room.MaxParticipants); err != nil {
		return nil, err
	}

	// member.added после успешной вставки; сбой резолва имени не отменяет join.
	userName := ""
	if u, err := s.users.GetByID(ctx, userID); err == nil {
		userName = u.Name()
	} else {
		slog.Error("member.joinRoom.resolveUser failed", slog.Any("err", err))
	}
	s.router.Dispatch(ctx, events.EventMemberAdded, events.Payload{
		"room_id":   roomID,
		"room_name": room.Name,
		"user_id":   userID,
		"user_name": userName,
	})

	return m, nil
}

func (s *MemberService) LeaveRoom(ctx context.Context, roomID string, userID int64) error {
	return s.members.Leave(ctx, roomID, userID)
}

func (s *MemberService) ListMembers(ctx context.Context, roomID string) ([]domain.Member, error) {
	return s.members.ListByRoom(ctx, roomID)
}

func (s *MemberService) TouchHeartbeat(ctx context.Context, roomID string, userID int64) error {
	return s.members.TouchHeartbeat(ctx, roomID, userID)
}
