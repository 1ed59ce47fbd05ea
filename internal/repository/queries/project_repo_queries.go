package queries

const (
	QueryGetProject = `
		SELECT id, student_id, title, status, grade, reviewer_id, created_at, updated_at
		FROM projects
		WHERE id = $1;
	`
	QueryUpdateProjectDecision = `
		UPDATE projects
		SET status = $2, grade = $3, reviewer_id = $4, updated_at = now()
		WHERE id = $1;
	`
	QueryUpsertReview = `
		INSERT INTO project_reviews (project_id, reviewer_id, status, score, comment, decided_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (project_id)
		DO UPDATE SET reviewer_id = EXCLUDED.reviewer_id,
		              status = EXCLUDED.status,
		              score = EXCLUDED.score,
		              comment = EXCLUDED.comment,
		              decided_at = EXCLUDED.decided_at;
	`
)
