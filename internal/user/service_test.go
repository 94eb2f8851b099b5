package user

import (
	"context"
	"errors"
	"testing"

	"minimart-be/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, userID string) (*User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, u User) (*User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*User, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func setJWTSecrets(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_ACCESS_SECRET", "test-access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "test-refresh-secret")
}

func registerInput() RegisterInput {
	return RegisterInput{
		FirstName: "Asha",
		LastName:  "Rao",
		Email:     "Asha@Example.com",
		Password:  "secret123",
		Phone:     "9876543210",
	}
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		setJWTSecrets(t)
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		input := registerInput()

		mockRepo.On("GetByEmail", ctx, "asha@example.com").Return(nil, ErrUserNotFound).Once()
		mockRepo.On("Create", ctx, mock.MatchedBy(func(u User) bool {
			return u.ID != "" &&
				u.Email == "asha@example.com" &&
				u.Password != "" && u.Password != "secret123"
		})).Return(&User{ID: "user-1", Email: "asha@example.com"}, nil).Once()

		u, tokens, err := svc.Register(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, "user-1", u.ID)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error - Missing First Name", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		input := registerInput()
		input.FirstName = "  "

		_, _, err := svc.Register(ctx, input)

		assert.Equal(t, ErrFirstNameRequired, err)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Error - Invalid Email", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		input := registerInput()
		input.Email = "not-an-email"

		_, _, err := svc.Register(ctx, input)

		assert.Equal(t, ErrInvalidEmail, err)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Error - Short Password", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		input := registerInput()
		input.Password = "short"

		_, _, err := svc.Register(ctx, input)

		assert.Equal(t, ErrPasswordTooShort, err)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Error - Email Taken", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		input := registerInput()

		mockRepo.On("GetByEmail", ctx, "asha@example.com").
			Return(&User{ID: "user-1"}, nil).Once()

		_, _, err := svc.Register(ctx, input)

		assert.Equal(t, ErrEmailExists, err)
		mockRepo.AssertNotCalled(t, "Create")
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error - Repository Failure", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		input := registerInput()
		dbErr := errors.New("db error")

		mockRepo.On("GetByEmail", ctx, "asha@example.com").Return(nil, dbErr).Once()

		_, _, err := svc.Register(ctx, input)

		assert.Equal(t, dbErr, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)
	stored := &User{ID: "user-1", Email: "asha@example.com", Password: hash}

	t.Run("Success", func(t *testing.T) {
		setJWTSecrets(t)
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetByEmail", ctx, "asha@example.com").Return(stored, nil).Once()

		u, tokens, err := svc.Login(ctx, " Asha@Example.com ", "secret123")

		require.NoError(t, err)
		assert.Equal(t, "user-1", u.ID)
		assert.NotEmpty(t, tokens.AccessToken)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error - Unknown Email", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, ErrUserNotFound).Once()

		_, _, err := svc.Login(ctx, "ghost@example.com", "secret123")

		assert.Equal(t, ErrInvalidCredentials, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error - Wrong Password", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetByEmail", ctx, "asha@example.com").Return(stored, nil).Once()

		_, _, err := svc.Login(ctx, "asha@example.com", "wrong-pass")

		assert.Equal(t, ErrInvalidCredentials, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Partial Update", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		phone := "9999999999"
		input := UpdateProfileInput{Phone: &phone}
		expected := &User{ID: "user-1", Phone: phone}

		mockRepo.On("UpdateProfile", ctx, "user-1", input).Return(expected, nil).Once()

		u, err := svc.UpdateProfile(ctx, "user-1", input)

		assert.NoError(t, err)
		assert.Equal(t, expected, u)
		mockRepo.AssertExpectations(t)
	})

	t.Run("No Fields - Returns Current Profile", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		expected := &User{ID: "user-1"}

		mockRepo.On("GetByID", ctx, "user-1").Return(expected, nil).Once()

		u, err := svc.UpdateProfile(ctx, "user-1", UpdateProfileInput{})

		assert.NoError(t, err)
		assert.Equal(t, expected, u)
		mockRepo.AssertNotCalled(t, "UpdateProfile")
		mockRepo.AssertExpectations(t)
	})
}
