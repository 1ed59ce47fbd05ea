package postgres

import (
	"context"
	"errors"

	"github.com/campus-hub/community-service/internal/domain"
	"github.com/campus-hub/community-service/internal/repository/queries"

	"github.com/jackc/pgx/v5"
)

type RoomRepo struct {
	q querier
}

func NewRoomRepo(q querier) *RoomRepo {
	return &RoomRepo{q: q}
}

func (r *RoomRepo) Create(ctx context.Context, room *domain.Room) error {
	err := r.q.QueryRow(ctx, queries.QueryCreateRoom,
		room.Name, room.OwnerID, room.MaxParticipants).
		Scan(&room.ID, &room.CreatedAt)
	if err != nil {
		return mapPgError(err)
	}
	return nil
}

func (r *RoomRepo) Get(ctx context.Context, id string) (*domain.Room, error) {
	var rm domain.Room
	err := r.q.QueryRow(ctx, queries.QueryGetRoom, id).
		Scan(&rm.ID, &rm.Name, &rm.OwnerID, &rm.MaxParticipants, &rm.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, mapPgError(err)
	}
	return &rm, nil
}

func (r *RoomRepo) List(ctx context.Context, limit int, cursorStr string) ([]domain.Room, string, error) {
	cur, err := DecodeCursor(cursorStr)
	if err != nil {
		return nil, "", err
	}

	var createdAt any
	var id any
	if cur != nil {
		createdAt = cur.CreatedAt
		id = cur.ID
	}

	rows, err := r.q.Query(ctx, queries.QueryListRooms, createdAt, id, limit)
	if err != nil {
		return nil, "", mapPgError(err)
	}
	defer rows.Close()

	var rooms []domain.Room
	for rows.Next() {
		var rm domain.Room
		if err := rows.Scan(&rm.ID, &rm.Name, &rm.OwnerID, &rm.MaxParticipants, &rm.CreatedAt); err != nil {
			return nil, "", err
		}
		rooms = append(rooms, rm)
	}

	var nextCursor string
	if len(rooms) == limit {
		last := rooms[len(rooms)-1]
		nextCursor, _ = EncodeCursor(Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}

	return rooms, nextCursor, rows.Err()
}

func (r *RoomRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, queries.QueryDeleteRoom, id)
	return mapPgError(err)
}
