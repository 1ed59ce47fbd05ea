package service

import (
	"context"
	"time"

	"github.com/campus-hub/community-service/internal/domain"
	"github.com/campus-hub/community-service/internal/events"
	"github.com/campus-hub/community-service/internal/repository"
)

// ReviewCommand — одно решение по проекту как атомарная единица работы.
type ReviewCommand interface {
	Execute(ctx context.Context) error
}

// Общая форма всех трёх решений:
//  1. загрузить проект (нет проекта — отказ без частичных записей);
//  2-3. обновить проект и review-запись в одной транзакции;
//  4. поднять ровно одно событие после коммита; сбой события коммит
//     не откатывает.
type reviewCommand struct {
	store  repository.DecisionStore
	router *events.Router
	now    func() time.Time

	projectID  string
	reviewerID int64
	status     domain.ProjectStatus
	score      *int
	comment    *string
	event      string
}

func (c *reviewCommand) Execute(ctx context.Context) error {
	project, err := c.store.Get(ctx, c.projectID)
	if err != nil {
		return err
	}

	project.Status = c.status
	project.ReviewerID = &c.reviewerID
	if c.status == domain.ProjectGraded {
		project.Grade = c.score
	}

	decision := &domain.ReviewDecision{
		ProjectID:  project.ID,
		ReviewerID: c.reviewerID,
		Status:     decisionStatus(c.status),
		Score:      c.score,
		Comment:    c.comment,
		DecidedAt:  c.now(),
	}

	if err := c.store.ApplyDecision(ctx, project, decision); err != nil {
		return err
	}

	payload := events.Payload{
		"project_id":  project.ID,
		"student_id":  project.StudentID,
		"reviewer_id": c.reviewerID,
	}
	if c.score != nil {
		payload["score"] = int64(*c.score)
	}
	c.router.Dispatch(ctx, c.event, payload)
	return nil
}

// Для оценки review-запись помечается APPROVED: grade подразумевает приём работы.
func decisionStatus(s domain.ProjectStatus) domain.ProjectStatus {
	if s == domain.ProjectGraded {
		return domain.ProjectApproved
	}
	return s
}

func NewApproveProjectCommand(store repository.DecisionStore, router *events.Router, projectID string, reviewerID int64, comment *string) ReviewCommand {
	return &reviewCommand{
		store:      store,
		router:     router,
		now:        time.Now,
		projectID:  projectID,
		reviewerID: reviewerID,
		status:     domain.ProjectApproved,
		comment:    comment,
		event:      events.EventProjectApproved,
	}
}

func NewRejectProjectCommand(store repository.DecisionStore, router *events.Router, projectID string, reviewerID int64, comment *string) ReviewCommand {
	return &reviewCommand{
		store:      store,
		router:     router,
		now:        time.Now,
		projectID:  projectID,
		reviewerID: reviewerID,
		status:     domain.ProjectRejected,
		comment:    comment,
		event:      events.EventProjectRejected,
	}
}

func NewGradeProjectCommand(store repository.DecisionStore, router *events.Router, projectID string, reviewerID int64, score int, comment *string) ReviewCommand {
	return &reviewCommand{
		store:      store,
		router:     router,
		now:        time.Now,
		projectID:  projectID,
		reviewerID: reviewerID,
		status:     domain.ProjectGraded,
		score:      &score,
		comment:    comment,
		event:      events.EventProjectGraded,
	}
}
