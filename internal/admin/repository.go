package admin

import (
	"context"
	"database/sql"
	"errors"
)

type Repository interface {
	GetByUsername(ctx context.Context, username string) (*Admin, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByUsername(ctx context.Context, username string) (*Admin, error) {
	var a Admin
	err := r.db.QueryRowContext(ctx, `
		SELECT id, username, password, created_at
		FROM admins
		WHERE username = $1
	`, username).Scan(&a.ID, &a.Username, &a.Password, &a.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, err
	}

	return &a, nil
}
