package queries

const (
	QueryGetInteraction = `
		SELECT post_id, user_id, type, created_at, updated_at
		FROM post_interactions
		WHERE post_id = $1 AND user_id = $2;
	`
	// Условный апсерт: второй писатель по той же паре обновляет тип,
	// а не падает на уникальном индексе.
	QueryUpsertInteraction = `
		INSERT INTO post_interactions (post_id, user_id, type)
		VALUES ($1, $2, $3)
		ON CONFLICT (post_id, user_id)
		DO UPDATE SET type = EXCLUDED.type, updated_at = now();
	`
	QueryDeleteInteraction = `
		DELETE FROM post_interactions WHERE post_id = $1 AND user_id = $2;
	`

	QuerySavePost = `
		INSERT INTO saved_posts (post_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING;
	`
	QueryUnsavePost = `DELETE FROM saved_posts WHERE post_id = $1 AND user_id = $2;`
	QueryIsSaved    = `
		SELECT EXISTS(SELECT 1 FROM saved_posts WHERE post_id = $1 AND user_id = $2);
	`
)
