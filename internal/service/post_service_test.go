package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/campus-hub/community-service/internal/domain"
	"github.com/campus-hub/community-service/internal/events"
)

func newPostFixture() (*PostService, *fakePosts, *eventRecorder) {
	posts := &fakePosts{posts: map[string]*domain.Post{
		"p1": {ID: "p1", AuthorID: 2, Title: "intro"},
	}}
	users := &fakeUsers{byID: map[int64]*domain.User{
		1: {ID: 1, Username: "alice"},
		2: {ID: 2, Username: "bob"},
	}}

	rec := &eventRecorder{}
	router := events.NewRouter(nil)
	router.Register(events.EventPostCommented, rec.handler(events.EventPostCommented))

	return NewPostService(posts, users, router), posts, rec
}

func TestAddComment(t *testing.T) {
	svc, posts, rec := newPostFixture()

	c, err := svc.AddComment(context.Background(), "p1", 1, "  nice post <b>!</b>  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts.comments) != 1 {
		t.Fatalf("comment not persisted")
	}
	if strings.Contains(c.Content, "<b>") {
		t.Fatalf("content not escaped: %q", c.Content)
	}

	got := rec.byName(events.EventPostCommented)
	if len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}
	p := got[0].payload
	if p.I64("post_author_id") != 2 || p.I64("commenter_id") != 1 {
		t.Fatalf("payload = %v", p)
	}
	if p.Str("commenter_name") != "alice" {
		t.Fatalf("commenter_name = %q", p.Str("commenter_name"))
	}
}

func TestAddComment_EmptyRejected(t *testing.T) {
	svc, posts, rec := newPostFixture()

	_, err := svc.AddComment(context.Background(), "p1", 1, "   ")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(posts.comments) != 0 || len(rec.events) != 0 {
		t.Fatalf("side effects after rejected comment")
	}
}

func TestAddComment_UnknownPost(t *testing.T) {
	svc, _, rec := newPostFixture()

	_, err := svc.AddComment(context.Background(), "nope", 1, "hello")
	if !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
	if len(rec.events) != 0 {
		t.Fatalf("events raised for unknown post")
	}
}
