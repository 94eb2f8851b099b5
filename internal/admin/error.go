package admin

import "errors"

var (
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrMissingCredentials = errors.New("Username and password are required")
	ErrAdminNotFound      = errors.New("admin not found")
)
