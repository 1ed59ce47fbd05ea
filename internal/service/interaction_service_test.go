package service

import (
	"context"
	"testing"

	"github.com/campus-hub/community-service/internal/domain"
	"github.com/campus-hub/community-service/internal/events"
)

func newInteractionFixture() (*InteractionService, *fakeInteractions, *eventRecorder) {
	posts := &fakePosts{posts: map[string]*domain.Post{
		"p1": {ID: "p1", AuthorID: 2, Title: "intro"},
	}}
	users := &fakeUsers{byID: map[int64]*domain.User{
		1: {ID: 1, Username: "alice"},
		2: {ID: 2, Username: "bob"},
	}}
	interactions := &fakeInteractions{}

	rec := &eventRecorder{}
	router := events.NewRouter(nil)
	router.Register(events.EventPostInteraction, rec.handler(events.EventPostInteraction))

	return NewInteractionService(posts, interactions, users, router), interactions, rec
}

func TestToggle_AddNewReaction(t *testing.T) {
	svc, interactions, rec := newInteractionFixture()

	res, err := svc.Toggle(context.Background(), "p1", 1, domain.InteractionLike)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != ToggleAdded {
		t.Fatalf("result = %q, want added", res)
	}
	if in := interactions.rows[ikey("p1", 1)]; in == nil || in.Type != domain.InteractionLike {
		t.Fatalf("reaction row missing or wrong type: %+v", in)
	}

	got := rec.byName(events.EventPostInteraction)
	if len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}
	p := got[0].payload
	if p.Str("action") != "added" || p.Str("interaction_type") != "LIKE" {
		t.Fatalf("payload = %v", p)
	}
	if p.I64("post_author_id") != 2 || p.I64("user_id") != 1 {
		t.Fatalf("payload ids = %v", p)
	}
}

func TestToggle_SameTypeRemoves(t *testing.T) {
	svc, interactions, rec := newInteractionFixture()

	if _, err := svc.Toggle(context.Background(), "p1", 1, domain.InteractionLike); err != nil {
		t.Fatalf("setup: %v", err)
	}
	res, err := svc.Toggle(context.Background(), "p1", 1, domain.InteractionLike)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != ToggleRemoved {
		t.Fatalf("result = %q, want removed", res)
	}
	if _, ok := interactions.rows[ikey("p1", 1)]; ok {
		t.Fatalf("reaction row still present after toggle off")
	}
	// Снятие реакции не уведомляется.
	if got := rec.byName(events.EventPostInteraction); len(got) != 1 {
		t.Fatalf("expected only the add event, got %d", len(got))
	}
}

func TestToggle_DifferentTypeUpdates(t *testing.T) {
	svc, interactions, rec := newInteractionFixture()

	if _, err := svc.Toggle(context.Background(), "p1", 1, domain.InteractionLike); err != nil {
		t.Fatalf("setup: %v", err)
	}
	res, err := svc.Toggle(context.Background(), "p1", 1, domain.InteractionLove)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != ToggleUpdated {
		t.Fatalf("result = %q, want updated", res)
	}
	if in := interactions.rows[ikey("p1", 1)]; in == nil || in.Type != domain.InteractionLove {
		t.Fatalf("row not updated: %+v", in)
	}
	if len(interactions.rows) != 1 {
		t.Fatalf("expected a single row per (post,user), got %d", len(interactions.rows))
	}

	got := rec.byName(events.EventPostInteraction)
	if len(got) != 2 {
		t.Fatalf("expected add+update events, got %d", len(got))
	}
	if got[1].payload.Str("action") != "updated" {
		t.Fatalf("second event action = %q", got[1].payload.Str("action"))
	}
}

func TestToggle_RepeatedShareIsNoop(t *testing.T) {
	svc, interactions, rec := newInteractionFixture()

	if _, err := svc.Toggle(context.Background(), "p1", 1, domain.InteractionShare); err != nil {
		t.Fatalf("setup: %v", err)
	}
	res, err := svc.Toggle(context.Background(), "p1", 1, domain.InteractionShare)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != ToggleAlreadyShared {
		t.Fatalf("result = %q, want already_shared", res)
	}
	// Строка остаётся, повторного события нет.
	if in := interactions.rows[ikey("p1", 1)]; in == nil || in.Type != domain.InteractionShare {
		t.Fatalf("share row missing after repeat: %+v", in)
	}
	if got := rec.byName(events.EventPostInteraction); len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}
}

func TestToggle_UnknownPost(t *testing.T) {
	svc, _, rec := newInteractionFixture()

	_, err := svc.Toggle(context.Background(), "nope", 1, domain.InteractionLike)
	if err == nil {
		t.Fatalf("expected error for unknown post")
	}
	if len(rec.events) != 0 {
		t.Fatalf("events raised for unknown post")
	}
}

func TestToggleSave_RoundTrip(t *testing.T) {
	svc, interactions, rec := newInteractionFixture()

	res, err := svc.ToggleSave(context.Background(), "p1", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != PostSaved {
		t.Fatalf("result = %q, want saved", res)
	}
	if !interactions.saves[ikey("p1", 1)] {
		t.Fatalf("save row missing")
	}

	res, err = svc.ToggleSave(context.Background(), "p1", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != PostUnsaved {
		t.Fatalf("result = %q, want unsaved", res)
	}
	if interactions.saves[ikey("p1", 1)] {
		t.Fatalf("save row still present")
	}
	// Сохранение — приватное действие, событий нет.
	if len(rec.events) != 0 {
		t.Fatalf("save raised events: %v", rec.events)
	}
}
