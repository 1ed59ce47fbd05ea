package domain

import "time"

type Post struct {
	ID        string    `db:"id"`
	AuthorID  int64     `db:"author_id"`
	Title     string    `db:"title"`
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
}

type Comment struct {
	ID        string    `db:"id"`
	PostID    string    `db:"post_id"`
	AuthorID  int64     `db:"author_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}

type InteractionType string

const (
	InteractionLike      InteractionType = "LIKE"
	InteractionLove      InteractionType = "LOVE"
	InteractionCelebrate InteractionType = "CELEBRATE"
	InteractionShare     InteractionType = "SHARE"
)

// ParseInteractionType — строгий разбор типа реакции из запроса.
func ParseInteractionType(s string) (InteractionType, bool) {
	switch InteractionType(s) {
	case InteractionLike, InteractionLove, InteractionCelebrate, InteractionShare:
		return InteractionType(s), true
	}
	return "", false
}

// Interaction — максимум одна строка на пару (post_id, user_id).
// SAVE хранится отдельным отношением saved_posts и сюда не входит.
type Interaction struct {
	PostID    string          `db:"post_id"`
	UserID    int64           `db:"user_id"`
	Type      InteractionType `db:"type"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}
