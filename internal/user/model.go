package user

import "time"

type User struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Password  string // bcrypt hash, never serialized
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
}

// UpdateProfileInput fields left nil keep their current value.
type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Address   *string
}
