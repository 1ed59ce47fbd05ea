package postgres

import (
	"context"
	"errors"

	"github.com/campus-hub/community-service/internal/domain"
	"github.com/campus-hub/community-service/internal/repository/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProjectRepo struct {
	q querier
}

// NewProjectRepo — конструктор от пула (*pgxpool.Pool)
func NewProjectRepo(q querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

// NewProjectRepoFromTx — конструктор от транзакции (pgx.Tx), для составных операций
func NewProjectRepoFromTx(tx pgx.Tx) *ProjectRepo {
	return &ProjectRepo{q: tx}
}

func (r *ProjectRepo) Get(ctx context.Context, id string) (*domain.Project, error) {
	var p domain.Project
	err := r.q.QueryRow(ctx, queries.QueryGetProject, id).
		Scan(&p.ID, &p.StudentID, &p.Title, &p.Status, &p.Grade,
			&p.ReviewerID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, mapPgError(err)
	}
	return &p, nil
}

func (r *ProjectRepo) UpdateDecision(ctx context.Context, p *domain.Project) error {
	tag, err := r.q.Exec(ctx, queries.QueryUpdateProjectDecision,
		p.ID, p.Status, p.Grade, p.ReviewerID)
	if err != nil {
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepo) UpsertReview(ctx context.Context, d *domain.ReviewDecision) error {
	_, err := r.q.Exec(ctx, queries.QueryUpsertReview,
		d.ProjectID, d.ReviewerID, d.Status, d.Score, d.Comment, d.DecidedAt)
	return mapPgError(err)
}

// DecisionStore — транзакционная обёртка над ProjectRepo: обновление
// проекта и upsert review-записи коммитятся вместе или откатываются вместе.
type DecisionStore struct {
	db *pgxpool.Pool
}

func NewDecisionStore(db *pgxpool.Pool) *DecisionStore {
	return &DecisionStore{db: db}
}

func (s *DecisionStore) Get(ctx context.Context, id string) (*domain.Project, error) {
	return NewProjectRepo(s.db).Get(ctx, id)
}

func (s *DecisionStore) ApplyDecision(ctx context.Context, project *domain.Project, decision *domain.ReviewDecision) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	repo := NewProjectRepoFromTx(tx)
	if err := repo.UpdateDecision(ctx, project); err != nil {
		return err
	}
	if err := repo.UpsertReview(ctx, decision); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
