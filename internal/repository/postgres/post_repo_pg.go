package postgres

import (
	"context"
	"errors"

	"github.com/campus-hub/community-service/internal/domain"
	"github.com/campus-hub/community-service/internal/repository/queries"

	"github.com/jackc/pgx/v5"
)

type PostRepo struct {
	q querier
}

func NewPostRepo(q querier) *PostRepo {
	return &PostRepo{q: q}
}

func (r *PostRepo) Get(ctx context.Context, id string) (*domain.Post, error) {
	var p domain.Post
	err := r.q.QueryRow(ctx, queries.QueryGetPost, id).
		Scan(&p.ID, &p.AuthorID, &p.Title, &p.Body, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPostNotFound
		}
		return nil, mapPgError(err)
	}
	return &p, nil
}

func (r *PostRepo) AddComment(ctx context.Context, c *domain.Comment) error {
	err := r.q.QueryRow(ctx, queries.QueryInsertComment, c.PostID, c.AuthorID, c.Content).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return mapPgError(err)
	}
	return nil
}
