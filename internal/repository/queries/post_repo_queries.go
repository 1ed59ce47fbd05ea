package queries

const (
	QueryGetPost = `
		SELECT id, author_id, title, body, created_at
		FROM posts
		WHERE id = $1;
	`
	QueryInsertComment = `
		INSERT INTO post_comments (post_id, author_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at;
	`
)
