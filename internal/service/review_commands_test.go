package service

import (
	"context"
	"errors"
	"testing"

	"github.com/campus-hub/community-service/internal/domain"
	"github.com/campus-hub/community-service/internal/events"
)

type fakeDecisionStore struct {
	projects map[string]*domain.Project

	applyErr error
	applied  []appliedDecision
}

type appliedDecision struct {
	project  domain.Project
	decision domain.ReviewDecision
}

func (f *fakeDecisionStore) Get(_ context.Context, id string) (*domain.Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeDecisionStore) ApplyDecision(_ context.Context, project *domain.Project, decision *domain.ReviewDecision) error {
	if f.applyErr != nil {
		return f.applyErr
	}
	f.projects[project.ID] = project
	f.applied = append(f.applied, appliedDecision{project: *project, decision: *decision})
	return nil
}

func newReviewFixture() (*fakeDecisionStore, *events.Router, *eventRecorder) {
	store := &fakeDecisionStore{projects: map[string]*domain.Project{
		"prj-1": {ID: "prj-1", StudentID: 7, Title: "compiler", Status: domain.ProjectPending},
	}}
	rec := &eventRecorder{}
	router := events.NewRouter(nil)
	router.Register(events.EventProjectApproved, rec.handler(events.EventProjectApproved))
	router.Register(events.EventProjectRejected, rec.handler(events.EventProjectRejected))
	router.Register(events.EventProjectGraded, rec.handler(events.EventProjectGraded))
	return store, router, rec
}

func TestApproveCommand(t *testing.T) {
	store, router, rec := newReviewFixture()

	cmd := NewApproveProjectCommand(store, router, "prj-1", 100, nil)
	if err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := store.projects["prj-1"]
	if p.Status != domain.ProjectApproved {
		t.Fatalf("status = %q, want APPROVED", p.Status)
	}
	if p.ReviewerID == nil || *p.ReviewerID != 100 {
		t.Fatalf("reviewer_id = %v", p.ReviewerID)
	}
	if len(store.applied) != 1 {
		t.Fatalf("decision not applied")
	}
	if store.applied[0].decision.Status != domain.ProjectApproved {
		t.Fatalf("decision status = %q", store.applied[0].decision.Status)
	}

	got := rec.byName(events.EventProjectApproved)
	if len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}
	if got[0].payload.I64("student_id") != 7 {
		t.Fatalf("student_id = %d", got[0].payload.I64("student_id"))
	}
}

func TestRejectCommand_WithComment(t *testing.T) {
	store, router, rec := newReviewFixture()

	comment := "missing tests"
	cmd := NewRejectProjectCommand(store, router, "prj-1", 100, &comment)
	if err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if store.projects["prj-1"].Status != domain.ProjectRejected {
		t.Fatalf("status = %q, want REJECTED", store.projects["prj-1"].Status)
	}
	d := store.applied[0].decision
	if d.Comment == nil || *d.Comment != comment {
		t.Fatalf("comment = %v", d.Comment)
	}
	if len(rec.byName(events.EventProjectRejected)) != 1 {
		t.Fatalf("reject event missing")
	}
}

func TestGradeCommand(t *testing.T) {
	store, router, rec := newReviewFixture()

	cmd := NewGradeProjectCommand(store, router, "prj-1", 100, 87, nil)
	if err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := store.projects["prj-1"]
	if p.Status != domain.ProjectGraded {
		t.Fatalf("status = %q, want GRADED", p.Status)
	}
	if p.Grade == nil || *p.Grade != 87 {
		t.Fatalf("grade = %v", p.Grade)
	}
	// Review-запись при оценке помечается APPROVED.
	if store.applied[0].decision.Status != domain.ProjectApproved {
		t.Fatalf("decision status = %q, want APPROVED", store.applied[0].decision.Status)
	}

	got := rec.byName(events.EventProjectGraded)
	if len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}
	if got[0].payload.I64("score") != 87 {
		t.Fatalf("score = %d", got[0].payload.I64("score"))
	}
}

func TestReviewCommand_UnknownProject(t *testing.T) {
	store, router, rec := newReviewFixture()

	cmd := NewApproveProjectCommand(store, router, "nope", 100, nil)
	err := cmd.Execute(context.Background())
	if !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
	if len(store.applied) != 0 {
		t.Fatalf("decision applied for missing project")
	}
	if len(rec.events) != 0 {
		t.Fatalf("events raised for missing project")
	}
}

func TestReviewCommand_NoEventOnStoreFailure(t *testing.T) {
	store, router, rec := newReviewFixture()
	store.applyErr = errors.New("tx aborted")

	cmd := NewApproveProjectCommand(store, router, "prj-1", 100, nil)
	if err := cmd.Execute(context.Background()); err == nil {
		t.Fatalf("expected store error")
	}
	if store.projects["prj-1"].Status != domain.ProjectPending {
		t.Fatalf("project mutated despite failed transaction")
	}
	if len(rec.events) != 0 {
		t.Fatalf("event raised despite failed transaction")
	}
}
