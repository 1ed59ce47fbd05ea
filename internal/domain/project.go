package domain

import "time"

type ProjectStatus string

const (
	ProjectPending  ProjectStatus = "PENDING"
	ProjectApproved ProjectStatus = "APPROVED"
	ProjectRejected ProjectStatus = "REJECTED"
	ProjectGraded   ProjectStatus = "GRADED"
)

type Project struct {
	ID         string        `db:"id"`
	StudentID  int64         `db:"student_id"`
	Title      string        `db:"title"`
	Status     ProjectStatus `db:"status"`
	Grade      *int          `db:"grade"`
	ReviewerID *int64        `db:"reviewer_id"`
	CreatedAt  time.Time     `db:"created_at"`
	UpdatedAt  time.Time     `db:"updated_at"`
}

// ReviewDecision — одно решение по проекту. Пишется в review-таблицу
// атомарно вместе с обновлением строки проекта.
type ReviewDecision struct {
	ProjectID  string        `db:"project_id"`
	ReviewerID int64         `db:"reviewer_id"`
	Status     ProjectStatus `db:"status"`
	Score      *int          `db:"score"`
	Comment    *string       `db:"comment"`
	DecidedAt  time.Time     `db:"decided_at"`
}
