package repository

import (
	"context"

	"github.com/campus-hub/community-service/internal/domain"
)

type PostRepository interface {
	Get(ctx context.Context, id string) (*domain.Post, error)
	AddComment(ctx context.Context, c *domain.Comment) error
}
