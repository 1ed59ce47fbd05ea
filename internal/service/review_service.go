package service

import (
	"context"

	"github.com/campus-hub/community-service/internal/events"
	"github.com/campus-hub/community-service/internal/repository"
)

// ReviewService — фасад над командами решений.
type ReviewService struct {
	store  repository.DecisionStore
	router *events.Router
}

func NewReviewService(store repository.DecisionStore, router *events.Router) *ReviewService {
	return &ReviewService{store: store, router: router}
}

func (s *ReviewService) Approve(ctx context.Context, projectID string, reviewerID int64, comment *string) error {
	return NewApproveProjectCommand(s.store, s.router, projectID, reviewerID, comment).Execute(ctx)
}

func (s *ReviewService) Reject(ctx context.Context, projectID string, reviewerID int64, comment *string) error {
	return NewRejectProjectCommand(s.store, s.router, projectID, reviewerID, comment).Execute(ctx)
}

func (s *ReviewService) Grade(ctx context.Context, projectID string, reviewerID int64, score int, comment *string) error {
	return NewGradeProjectCommand(s.store, s.router, projectID, reviewerID, score, comment).Execute(ctx)
}
