package admin

import "time"

type Admin struct {
	ID        string
	Username  string
	Password  string // bcrypt hash
	CreatedAt time.Time
}
