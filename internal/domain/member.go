package domain

import "time"

type Member struct {
	RoomID   string    `db:"room_id"`
	UserID   int64     `db:"user_id"`
	Username string    `db:"username"`
	JoinedAt time.Time `db:"joined_at"`
	LastSeen time.Time `db:"last_seen"`
}
