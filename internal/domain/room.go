package domain

import "time"

type Room struct {
	ID              string    `db:"id"`
	Name            string    `db:"name"`
	OwnerID         int64     `db:"owner_id"`
	MaxParticipants int64     `db:"max_participants"`
	CreatedAt       time.Time `db:"created_at"`
}
