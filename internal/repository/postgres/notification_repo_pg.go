package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/campus-hub/community-service/internal/domain"
	"github.com/campus-hub/community-service/internal/repository"
	"github.com/campus-hub/community-service/internal/repository/queries"
)

type NotificationRepo struct {
	q querier
}

func NewNotificationRepo(q querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

func (r *NotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	err := r.q.QueryRow(ctx, queries.QueryInsertNotification,
		n.RecipientID, n.Type, n.Message, n.RelatedEntityType, n.RelatedEntityID).
		Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return mapPgError(err)
	}
	return nil
}

func (r *NotificationRepo) ListByRecipient(ctx context.Context, recipientID int64, limit int, cursorStr string) ([]domain.Notification, string, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	cur, err := DecodeCursor(cursorStr)
	if err != nil {
		return nil, "", fmt.Errorf("decode cursor: %w", err)
	}

	var createdAt any
	var id any
	if cur != nil {
		createdAt = cur.CreatedAt
		id = cur.ID
	}

	rows, err := r.q.Query(ctx, queries.QueryListNotifications, recipientID, createdAt, id, limit)
	if err != nil {
		return nil, "", mapPgError(err)
	}
	defer rows.Close()

	var out []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.RecipientID, &n.Type, &n.Message,
			&n.RelatedEntityType, &n.RelatedEntityID, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, "", err
		}
		out = append(out, n)
	}

	var next string
	if len(out) == limit {
		last := out[len(out)-1]
		if c, e := EncodeCursor(Cursor{
			CreatedAt: last.CreatedAt,
			ID:        strconv.FormatInt(last.ID, 10),
		}); e == nil {
			next = c
		}
	}
	return out, next, rows.Err()
}

func (r *NotificationRepo) CountUnread(ctx context.Context, recipientID int64) (int64, error) {
	var count int64
	err := r.q.QueryRow(ctx, queries.QueryCountUnread, recipientID).Scan(&count)
	return count, err
}

func (r *NotificationRepo) MarkRead(ctx context.Context, id, recipientID int64) error {
	tag, err := r.q.Exec(ctx, queries.QueryMarkRead, id, recipientID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *NotificationRepo) MarkAllRead(ctx context.Context, recipientID int64) error {
	_, err := r.q.Exec(ctx, queries.QueryMarkAllRead, recipientID)
	return err
}

func (r *NotificationRepo) Delete(ctx context.Context, id, recipientID int64) error {
	tag, err := r.q.Exec(ctx, queries.QueryDeleteNotification, id, recipientID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
