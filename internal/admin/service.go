package admin

import (
	"context"
	"errors"
	"strings"
	"time"

	"minimart-be/internal/auth"
	"minimart-be/internal/logger"

	"go.uber.org/zap"
)

const accessTokenTTL = time.Hour

type Service interface {
	Login(ctx context.Context, username, password string) (*Admin, *auth.TokenPair, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Login(ctx context.Context, username, password string) (*Admin, *auth.TokenPair, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, nil, ErrMissingCredentials
	}

	a, err := s.repo.GetByUsername(ctx, strings.ToLower(username))
	if errors.Is(err, ErrAdminNotFound) {
		return nil, nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, nil, err
	}

	if !auth.CheckPasswordHash(password, a.Password) {
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := auth.GenerateTokenPair(a.ID, "", auth.RoleAdmin, accessTokenTTL)
	if err != nil {
		return nil, nil, err
	}

	logger.FromCtx(ctx).Info("admin logged in", zap.String("admin_id", a.ID))

	return a, tokens, nil
}
