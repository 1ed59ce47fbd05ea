package domain

import "time"

type User struct {
	ID          int64     `db:"id"`
	Username    string    `db:"username"`
	DisplayName *string   `db:"display_name"`
	Role        string    `db:"role"` // student|professor|admin
	CreatedAt   time.Time `db:"created_at"`
}

// Name — имя для текста уведомлений: display_name, иначе username.
func (u *User) Name() string {
	if u.DisplayName != nil && *u.DisplayName != "" {
		return *u.DisplayName
	}
	return u.Username
}
