package queries

const (
	QueryCreateRoom = `
		INSERT INTO rooms (name, owner_id, max_participants)
		VALUES ($1, $2, $3)
		RETURNING id, created_at;
	`
	QueryGetRoom = `
		SELECT id, name, owner_id, max_participants, created_at
		FROM rooms
		WHERE id = $1;
	`
	QueryListRooms = `
		SELECT id, name, owner_id, max_participants, created_at
		FROM rooms
		WHERE ($1::timestamptz IS NULL OR created_at < $1
		       OR (created_at = $1 AND id < $2))
		ORDER BY created_at DESC, id DESC
		LIMIT $3;
	`
	QueryDeleteRoom = `DELETE FROM rooms WHERE id = $1;`
)
