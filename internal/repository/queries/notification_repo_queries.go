package queries

const (
	QueryInsertNotification = `
		INSERT INTO notifications (recipient_id, type, message, related_entity_type, related_entity_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;
	`
	QueryListNotifications = `
		SELECT id, recipient_id, type, message, related_entity_type, related_entity_id, is_read, created_at
		FROM notifications
		WHERE recipient_id = $1
		  AND (
		    $2::timestamptz IS NULL
		    OR created_at < $2
		    OR (created_at = $2 AND id < $3)
		  )
		ORDER BY created_at DESC, id DESC
		LIMIT $4;
	`
	QueryCountUnread = `
		SELECT COUNT(*) FROM notifications WHERE recipient_id = $1 AND is_read = FALSE;
	`
	QueryMarkRead = `
		UPDATE notifications SET is_read = TRUE WHERE id = $1 AND recipient_id = $2;
	`
	QueryMarkAllRead = `
		UPDATE notifications SET is_read = TRUE WHERE recipient_id = $1 AND is_read = FALSE;
	`
	QueryDeleteNotification = `
		DELETE FROM notifications WHERE id = $1 AND recipient_id = $2;
	`
)
