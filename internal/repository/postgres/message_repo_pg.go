package postgres

import (
	"context"
	"fmt"

	"github.com/campus-hub/community-service/internal/domain"
	"github.com/campus-hub/community-service/internal/repository/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

// MessageRepo держит пул: Save пишет сообщение и mention-строки
// одной транзакцией.
type MessageRepo struct {
	db *pgxpool.Pool
}

func NewMessageRepo(db *pgxpool.Pool) *MessageRepo {
	return &MessageRepo{db: db}
}

func (r *MessageRepo) Save(ctx context.Context, msg *domain.ChatMessage) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, queries.QueryInsertMessage,
		msg.RoomID, msg.SenderID, msg.Content, msg.MessageType, msg.FilePath).
		Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		return mapPgError(err)
	}

	for _, uid := range msg.MentionedUserIDs {
		if _, err := tx.Exec(ctx, queries.QueryInsertMention, msg.ID, uid); err != nil {
			return mapPgError(err)
		}
	}

	return tx.Commit(ctx)
}

// History возвращает историю сообщений комнаты с курсорной пагинацией (created_at,id DESC).
func (r *MessageRepo) History(ctx context.Context, roomID, after string, limit int) ([]domain.ChatMessage, string, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	cur, err := DecodeCursor(after)
	if err != nil {
		return nil, "", fmt.Errorf("decode cursor: %w", err)
	}

	var createdAt any
	var id any
	if cur != nil {
		createdAt = cur.CreatedAt
		id = cur.ID
	}

	rows, err := r.db.Query(ctx, queries.QueryMessageHistory, roomID, createdAt, id, limit)
	if err != nil {
		return nil, "", mapPgError(err)
	}
	defer rows.Close()

	var out []domain.ChatMessage
	for rows.Next() {
		var m domain.ChatMessage
		if err := rows.Scan(&m.ID, &m.RoomID, &m.SenderID, &m.Content,
			&m.MessageType, &m.FilePath, &m.IsDeleted, &m.CreatedAt); err != nil {
			return nil, "", err
		}
		out = append(out, m)
	}

	var next string
	if len(out) == limit {
		last := out[len(out)-1]
		if c, e := EncodeCursor(Cursor{CreatedAt: last.CreatedAt, ID: last.ID}); e == nil {
			next = c
		}
	}
	return out, next, rows.Err()
}
