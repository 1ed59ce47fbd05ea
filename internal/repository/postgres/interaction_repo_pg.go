package postgres

import (
	"context"
	"errors"

	"github.com/campus-hub/community-service/internal/domain"
	"github.com/campus-hub/community-service/internal/repository"
	"github.com/campus-hub/community-service/internal/repository/queries"

	"github.com/jackc/pgx/v5"
)

type InteractionRepo struct {
	q querier
}

func NewInteractionRepo(q querier) *InteractionRepo {
	return &InteractionRepo{q: q}
}

func (r *InteractionRepo) Get(ctx context.Context, postID string, userID int64) (*domain.Interaction, error) {
	var in domain.Interaction
	err := r.q.QueryRow(ctx, queries.QueryGetInteraction, postID, userID).
		Scan(&in.PostID, &in.UserID, &in.Type, &in.CreatedAt, &in.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, mapPgError(err)
	}
	return &in, nil
}

func (r *InteractionRepo) Upsert(ctx context.Context, in *domain.Interaction) error {
	_, err := r.q.Exec(ctx, queries.QueryUpsertInteraction, in.PostID, in.UserID, in.Type)
	return mapPgError(err)
}

func (r *InteractionRepo) Delete(ctx context.Context, postID string, userID int64) error {
	cmd, err := r.q.Exec(ctx, queries.QueryDeleteInteraction, postID, userID)
	if err != nil {
		return mapPgError(err)
	}
	if cmd.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *InteractionRepo) SavePost(ctx context.Context, postID string, userID int64) error {
	_, err := r.q.Exec(ctx, queries.QuerySavePost, postID, userID)
	return mapPgError(err)
}

func (r *InteractionRepo) UnsavePost(ctx context.Context, postID string, userID int64) error {
	_, err := r.q.Exec(ctx, queries.QueryUnsavePost, postID, userID)
	return mapPgError(err)
}

func (r *InteractionRepo) IsSaved(ctx context.Context, postID string, userID int64) (bool, error) {
	var saved bool
	err := r.q.QueryRow(ctx, queries.QueryIsSaved, postID, userID).Scan(&saved)
	return saved, err
}
