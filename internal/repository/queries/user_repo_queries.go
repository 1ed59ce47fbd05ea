package queries

const (
	QueryGetUserByID = `
		SELECT id, username, display_name, role, created_at
		FROM users
		WHERE id = $1;
	`
	QueryGetUserByUsername = `
		SELECT id, username, display_name, role, created_at
		FROM users
		WHERE username = $1;
	`
)
