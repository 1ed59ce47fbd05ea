package service

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/campus-hub/community-service/internal/domain"
	"github.com/campus-hub/community-service/internal/events"
	"github.com/campus-hub/community-service/internal/repository"
)

// Общие in-memory фейки для тестов сервисного слоя.

type fakeRooms struct {
	rooms map[string]*domain.Room
}

func (f *fakeRooms) Create(_ context.Context, room *domain.Room) error {
	f.rooms[room.ID] = room
	return nil
}

func (f *fakeRooms) Get(_ context.Context, id string) (*domain.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	return r, nil
}

func (f *fakeRooms) List(_ context.Context, _ int, _ string) ([]domain.Room, string, error) {
	out := make([]domain.Room, 0, len(f.rooms))
	for _, r := range f.rooms {
		out = append(out, *r)
	}
	return out, "", nil
}

func (f *fakeRooms) Delete(_ context.Context, id string) error {
	delete(f.rooms, id)
	return nil
}

type fakeMembers struct {
	members map[string]map[int64]bool // room -> user -> joined
}

func (f *fakeMembers) Join(_ context.Context, m *domain.Member, _ int64) error {
	if f.members[m.RoomID] == nil {
		f.members[m.RoomID] = make(map[int64]bool)
	}
	f.members[m.RoomID][m.UserID] = true
	return nil
}

func (f *fakeMembers) Leave(_ context.Context, roomID string, userID int64) error {
	delete(f.members[roomID], userID)
	return nil
}

func (f *fakeMembers) Exists(_ context.Context, roomID string, userID int64) (bool, error) {
	return f.members[roomID][userID], nil
}

func (f *fakeMembers) ListByRoom(_ context.Context, roomID string) ([]domain.Member, error) {
	var out []domain.Member
	for uid := range f.members[roomID] {
		out = append(out, domain.Member{RoomID: roomID, UserID: uid})
	}
	return out, nil
}

func (f *fakeMembers) TouchHeartbeat(_ context.Context, _ string, _ int64) error { return nil }

type fakeUsers struct {
	byID map[int64]*domain.User
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range f.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type fakeMessages struct {
	saved    []*domain.ChatMessage
	failSave bool
}

func (f *fakeMessages) Save(_ context.Context, msg *domain.ChatMessage) error {
	if f.failSave {
		return errors.New("boom")
	}
	msg.ID = "msg-1"
	f.saved = append(f.saved, msg)
	return nil
}

func (f *fakeMessages) History(_ context.Context, _, _ string, _ int) ([]domain.ChatMessage, string, error) {
	out := make([]domain.ChatMessage, 0, len(f.saved))
	for _, m := range f.saved {
		out = append(out, *m)
	}
	return out, "", nil
}

type fakePosts struct {
	posts    map[string]*domain.Post
	comments []*domain.Comment
}

func (f *fakePosts) Get(_ context.Context, id string) (*domain.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	return p, nil
}

func (f *fakePosts) AddComment(_ context.Context, c *domain.Comment) error {
	c.ID = "comment-1"
	f.comments = append(f.comments, c)
	return nil
}

type fakeInteractions struct {
	rows  map[string]*domain.Interaction // key post:user
	saves map[string]bool
}

func ikey(postID string, userID int64) string {
	return postID + ":" + strconv.FormatInt(userID, 10)
}

func (f *fakeInteractions) Get(_ context.Context, postID string, userID int64) (*domain.Interaction, error) {
	in, ok := f.rows[ikey(postID, userID)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *in
	return &cp, nil
}

func (f *fakeInteractions) Upsert(_ context.Context, in *domain.Interaction) error {
	if f.rows == nil {
		f.rows = make(map[string]*domain.Interaction)
	}
	f.rows[ikey(in.PostID, in.UserID)] = in
	return nil
}

func (f *fakeInteractions) Delete(_ context.Context, postID string, userID int64) error {
	k := ikey(postID, userID)
	if _, ok := f.rows[k]; !ok {
		return repository.ErrNotFound
	}
	delete(f.rows, k)
	return nil
}

func (f *fakeInteractions) SavePost(_ context.Context, postID string, userID int64) error {
	if f.saves == nil {
		f.saves = make(map[string]bool)
	}
	f.saves[ikey(postID, userID)] = true
	return nil
}

func (f *fakeInteractions) UnsavePost(_ context.Context, postID string, userID int64) error {
	delete(f.saves, ikey(postID, userID))
	return nil
}

func (f *fakeInteractions) IsSaved(_ context.Context, postID string, userID int64) (bool, error) {
	return f.saves[ikey(postID, userID)], nil
}

// memberDirectory — events.RoomDirectory поверх фейков комнат и участников.
type memberDirectory struct {
	rooms   *fakeRooms
	members *fakeMembers
}

func (d *memberDirectory) Members(ctx context.Context, roomID string) ([]domain.Member, error) {
	return d.members.ListByRoom(ctx, roomID)
}

func (d *memberDirectory) Owner(ctx context.Context, roomID string) (int64, error) {
	r, err := d.rooms.Get(ctx, roomID)
	if err != nil {
		return 0, err
	}
	return r.OwnerID, nil
}

// eventRecorder накапливает доставленные события.
type eventRecorder struct {
	mu     sync.Mutex
	events []recordedEvent
}

type recordedEvent struct {
	name    string
	payload events.Payload
}

func (r *eventRecorder) handler(name string) events.HandlerFunc {
	return func(_ context.Context, p events.Payload) error {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.events = append(r.events, recordedEvent{name: name, payload: p})
		return nil
	}
}

func (r *eventRecorder) byName(name string) []recordedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []recordedEvent
	for _, e := range r.events {
		if e.name == name {
			out = append(out, e)
		}
	}
	return out
}
