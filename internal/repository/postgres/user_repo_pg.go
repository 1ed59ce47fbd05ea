package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/campus-hub/community-service/internal/domain"
	"github.com/campus-hub/community-service/internal/repository/queries"

	"github.com/jackc/pgx/v5"
)

type UserRepo struct {
	q querier
}

func NewUserRepo(q querier) *UserRepo {
	return &UserRepo{q: q}
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, queries.QueryGetUserByID, id)
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, queries.QueryGetUserByUsername, strings.TrimSpace(username))
}

func (r *UserRepo) getOne(ctx context.Context, sql string, arg any) (*domain.User, error) {
	var u domain.User
	err := r.q.QueryRow(ctx, sql, arg).
		Scan(&u.ID, &u.Username, &u.DisplayName, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, mapPgError(err)
	}
	return &u, nil
}
