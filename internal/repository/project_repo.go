package repository

import (
	"context"

	"github.com/campus-hub/community-service/internal/domain"
)

type ProjectRepository interface {
	Get(ctx context.Context, id string) (*domain.Project, error)
}

// DecisionStore применяет решение ревьюера: обновление строки проекта и
// upsert review-записи в одной транзакции. Частичная запись невозможна.
type DecisionStore interface {
	ProjectRepository
	ApplyDecision(ctx context.Context, project *domain.Project, decision *domain.ReviewDecision) error
}
