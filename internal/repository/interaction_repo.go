package repository

import (
	"context"

	"github.com/campus-hub/community-service/internal/domain"
)

type InteractionRepository interface {
	Get(ctx context.Context, postID string, userID int64) (*domain.Interaction, error)
	// Upsert — условный апсерт по уникальной паре (post_id, user_id):
	// параллельная вставка той же пары превращается в update, не в дубль.
	Upsert(ctx context.Context, in *domain.Interaction) error
	Delete(ctx context.Context, postID string, userID int64) error

	SavePost(ctx context.Context, postID string, userID int64) error
	UnsavePost(ctx context.Context, postID string, userID int64) error
	IsSaved(ctx context.Context, postID string, userID int64) (bool, error)
}
