package postgres

import (
	"context"

	"github.com/campus-hub/community-service/internal/domain"
	"github.com/campus-hub/community-service/internal/repository/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

// MemberRepo держит пул напрямую: Join требует собственную транзакцию
// с блокировкой строки комнаты.
type MemberRepo struct {
	db *pgxpool.Pool
}

func NewMemberRepo(db *pgxpool.Pool) *MemberRepo {
	return &MemberRepo{db: db}
}

// Join — защищён от гонок по max_participants.
// Два параллельных Join по одной комнате не пробьют лимит.
func (r *MemberRepo) Join(ctx context.Context, m *domain.Member, maxParticipants int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// Блокируем строку комнаты; параллельные транзакции по той же комнате ждут.
	var mp int64
	if err := tx.QueryRow(ctx, queries.QueryLockRoom, m.RoomID).Scan(&mp); err != nil {
		return mapPgError(err)
	}
	if mp > 0 {
		maxParticipants = mp
	}

	var count int64
	if err := tx.QueryRow(ctx, queries.QueryCountMembers, m.RoomID).Scan(&count); err != nil {
		return err
	}
	if count >= maxParticipants {
		return domain.ErrRoomFull
	}

	if _, err := tx.Exec(ctx, queries.QueryInsertMember, m.RoomID, m.UserID); err != nil {
		return mapPgError(err)
	}

	return tx.Commit(ctx)
}

func (r *MemberRepo) Leave(ctx context.Context, roomID string, userID int64) error {
	cmd, err := r.db.Exec(ctx, queries.QueryDeleteMember, roomID, userID)
	if err != nil {
		return mapPgError(err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotInRoom
	}
	return nil
}

func (r *MemberRepo) Exists(ctx context.Context, roomID string, userID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, queries.QueryMemberExists, roomID, userID).Scan(&exists)
	return exists, err
}

func (r *MemberRepo) ListByRoom(ctx context.Context, roomID string) ([]domain.Member, error) {
	rows, err := r.db.Query(ctx, queries.QueryListMembers, roomID)
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	var list []domain.Member
	for rows.Next() {
		var m domain.Member
		if err := rows.Scan(&m.RoomID, &m.UserID, &m.Username, &m.JoinedAt, &m.LastSeen); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (r *MemberRepo) TouchHeartbeat(ctx context.Context, roomID string, userID int64) error {
	cmd, err := r.db.Exec(ctx, queries.QueryTouchHeartbeat, roomID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotInRoom
	}
	return nil
}
