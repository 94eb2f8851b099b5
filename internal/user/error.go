package user

import "errors"

var (
	ErrEmailExists        = errors.New("User already exists")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrUserNotFound       = errors.New("User not found")

	// -- Validation & Input --
	ErrFirstNameRequired = errors.New("First name is required")
	ErrLastNameRequired  = errors.New("Last name is required")
	ErrInvalidEmail      = errors.New("Please include a valid email")
	ErrPasswordTooShort  = errors.New("Password must be at least 6 characters")
)
