package queries

const (
	QueryLockRoom = `SELECT max_participants FROM rooms WHERE id = $1 FOR UPDATE;`

	QueryCountMembers = `SELECT COUNT(*) FROM room_members WHERE room_id = $1;`

	QueryInsertMember = `
		INSERT INTO room_members (room_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING;
	`
	QueryMemberExists = `
		SELECT EXISTS(SELECT 1 FROM room_members WHERE room_id = $1 AND user_id = $2);
	`
	QueryDeleteMember = `DELETE FROM room_members WHERE room_id = $1 AND user_id = $2;`

	QueryListMembers = `
		SELECT m.room_id, m.user_id, u.username, m.joined_at, m.last_seen
		FROM room_members AS m
		JOIN users AS u ON u.id = m.user_id
		WHERE m.room_id = $1
		ORDER BY m.joined_at ASC;
	`
	QueryTouchHeartbeat = `
		UPDATE room_members SET last_seen = now()
		WHERE room_id = $1 AND user_id = $2;
	`
)
