package queries

const (
	QueryInsertMessage = `
		INSERT INTO room_messages (room_id, sender_id, content, message_type, file_path)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;
	`
	QueryInsertMention = `
		INSERT INTO message_mentions (message_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING;
	`
	QueryMessageHistory = `
		SELECT id, room_id, sender_id, content, message_type, file_path, is_deleted, created_at
		FROM room_messages
		WHERE room_id = $1
		  AND is_deleted = FALSE
		  AND (
		    $2::timestamptz IS NULL
		    OR created_at < $2
		    OR (created_at = $2 AND id < $3)
		  )
		ORDER BY created_at DESC, id DESC
		LIMIT $4;
	`
)
