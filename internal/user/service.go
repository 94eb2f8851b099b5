package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"minimart-be/internal/auth"
	"minimart-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const accessTokenTTL = 24 * time.Hour

type Service interface {
	Register(ctx context.Context, input RegisterInput) (*User, *auth.TokenPair, error)
	Login(ctx context.Context, email, password string) (*User, *auth.TokenPair, error)
	GetProfile(ctx context.Context, userID string) (*User, error)
	UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, input RegisterInput) (*User, *auth.TokenPair, error) {
	if strings.TrimSpace(input.FirstName) == "" {
		return nil, nil, ErrFirstNameRequired
	}
	if strings.TrimSpace(input.LastName) == "" {
		return nil, nil, ErrLastNameRequired
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !strings.Contains(email, "@") {
		return nil, nil, ErrInvalidEmail
	}

	if len(input.Password) < 6 {
		return nil, nil, ErrPasswordTooShort
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, ErrEmailExists
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, nil, err
	}

	u, err := s.repo.Create(ctx, User{
		ID:        uuid.New().String(),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     email,
		Password:  hash,
		Phone:     input.Phone,
	})
	if err != nil {
		return nil, nil, err
	}

	tokens, err := auth.GenerateTokenPair(u.ID, u.Email, auth.RoleUser, accessTokenTTL)
	if err != nil {
		return nil, nil, err
	}

	logger.FromCtx(ctx).Info("user registered", zap.String("user_id", u.ID))

	return u, tokens, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*User, *auth.TokenPair, error) {
	u, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, ErrUserNotFound) {
		return nil, nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, nil, err
	}

	if !auth.CheckPasswordHash(password, u.Password) {
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := auth.GenerateTokenPair(u.ID, u.Email, auth.RoleUser, accessTokenTTL)
	if err != nil {
		return nil, nil, err
	}

	logger.FromCtx(ctx).Info("user logged in", zap.String("user_id", u.ID))

	return u, tokens, nil
}

func (s *service) GetProfile(ctx context.Context, userID string) (*User, error) {
	return s.repo.GetByID(ctx, userID)
}

func (s *service) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*User, error) {
	if input.FirstName == nil && input.LastName == nil && input.Phone == nil && input.Address == nil {
		return s.repo.GetByID(ctx, userID)
	}

	return s.repo.UpdateProfile(ctx, userID, input)
}
