package service

import (
	"context"
	"errors"
	"testing"

	"github.com/campus-hub/community-service/internal/domain"
	"github.com/campus-hub/community-service/internal/events"
)

func newMemberFixture() (*MemberService, *fakeMembers, *eventRecorder) {
	rooms := &fakeRooms{rooms: map[string]*domain.Room{
		"r1": {ID: "r1", Name: "go-study", OwnerID: 9, MaxParticipants: 50},
	}}
	members := &fakeMembers{members: map[string]map[int64]bool{"r1": {}}}
	users := &fakeUsers{byID: map[int64]*domain.User{
		5: {ID: 5, Username: "dave"},
		9: {ID: 9, Username: "owner"},
	}}

	rec := &eventRecorder{}
	router := events.NewRouter(&memberDirectory{rooms: rooms, members: members})
	router.Register(events.EventRoomJoined, rec.handler(events.EventRoomJoined))

	return NewMemberService(rooms, members, users, router), members, rec
}

func TestJoinRoom_NotifiesOwner(t *testing.T) {
	svc, members, rec := newMemberFixture()

	m, err := svc.JoinRoom(context.Background(), "r1", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !members.members["r1"][5] {
		t.Fatalf("membership row missing")
	}
	if m.RoomID != "r1" || m.UserID != 5 {
		t.Fatalf("member = %+v", m)
	}

	got := rec.byName(events.EventRoomJoined)
	if len(got) != 1 {
		t.Fatalf("expected 1 room.joined delivery, got %d", len(got))
	}
	if got[0].payload.I64("recipient_id") != 9 {
		t.Fatalf("recipient = %d, want owner", got[0].payload.I64("recipient_id"))
	}
	if got[0].payload.Str("user_name") != "dave" {
		t.Fatalf("user_name = %q", got[0].payload.Str("user_name"))
	}
}

func TestJoinRoom_OwnerSelfJoinSilent(t *testing.T) {
	svc, _, rec := newMemberFixture()

	if _, err := svc.JoinRoom(context.Background(), "r1", 9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rec.events) != 0 {
		t.Fatalf("owner self-join produced notifications")
	}
}

func TestJoinRoom_Repeated(t *testing.T) {
	svc, _, _ := newMemberFixture()

	if _, err := svc.JoinRoom(context.Background(), "r1", 5); err != nil {
		t.Fatalf("setup: %v", err)
	}
	_, err := svc.JoinRoom(context.Background(), "r1", 5)
	if !errors.Is(err, domain.ErrAlreadyJoined) {
		t.Fatalf("expected ErrAlreadyJoined, got %v", err)
	}
}

func TestJoinRoom_UnknownRoom(t *testing.T) {
	svc, _, rec := newMemberFixture()

	_, err := svc.JoinRoom(context.Background(), "nope", 5)
	if !errors.Is(err, domain.ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
	if len(rec.events) != 0 {
		t.Fatalf("events raised for unknown room")
	}
}
