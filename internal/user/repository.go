package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, userID string) (*User, error)
	Create(ctx context.Context, u User) (*User, error)
	UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*User, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const userColumns = `id, first_name, last_name, email, password, phone, address, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*User, error) {
	var u User
	err := row.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.Password,
		&u.Phone,
		&u.Address,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)

	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (r *repository) GetByID(ctx context.Context, userID string) (*User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, userID)

	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (r *repository) Create(ctx context.Context, u User) (*User, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (id, first_name, last_name, email, password, phone, address)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`,
		u.ID,
		u.FirstName,
		u.LastName,
		u.Email,
		u.Password,
		u.Phone,
		u.Address,
	).Scan(&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return &u, nil
}

func (r *repository) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*User, error) {
	query := "UPDATE users SET updated_at = NOW()"
	args := []any{}
	argIndex := 1

	appendSet := func(column string, value any) {
		query += fmt.Sprintf(", %s = $%d", column, argIndex)
		args = append(args, value)
		argIndex++
	}

	if input.FirstName != nil {
		appendSet("first_name", *input.FirstName)
	}
	if input.LastName != nil {
		appendSet("last_name", *input.LastName)
	}
	if input.Phone != nil {
		appendSet("phone", *input.Phone)
	}
	if input.Address != nil {
		appendSet("address", *input.Address)
	}

	query += fmt.Sprintf(" WHERE id = $%d RETURNING %s", argIndex, userColumns)
	args = append(args, userID)

	row := r.db.QueryRowContext(ctx, query, args...)

	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	return u, nil
}
