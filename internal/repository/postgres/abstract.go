package postgres

import (
	"context"
	"errors"

	"github.com/campus-hub/community-service/internal/repository"

	"github.com/jackc/pgx/v5"
	pgconn "github.com/jackc/pgx/v5/pgconn"
)

/*
абстрактный слой над *pgxpool.Pool / pgx.Tx
чтобы один и тот же репозиторий работал и от пула, и внутри транзакции
*/
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique violation
			return repository.ErrAlreadyExists
		case "23503": // foreign key violation
			return repository.ErrInvalidInput
		}
	}

	return err
}
