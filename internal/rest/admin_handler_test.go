package rest

import (
	"context"
	"net/http"
	"testing"

	"minimart-be/internal/admin"
	"minimart-be/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAdminService is a mock implementation of the admin.Service interface
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) Login(ctx context.Context, username, password string) (*admin.Admin, *auth.TokenPair, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*admin.Admin), args.Get(1).(*auth.TokenPair), args.Error(2)
}

func adminTestRouter(svc admin.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAdminHandler(svc)

	r := gin.New()
	r.POST("/api/admin/login", h.Login)
	return r
}

func TestAdminHandler_Login(t *testing.T) {
	body := `{"username": "boss", "password": "admin-pass"}`

	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockAdminService)
		r := adminTestRouter(mockSvc)

		mockSvc.On("Login", mock.Anything, "boss", "admin-pass").
			Return(
				&admin.Admin{ID: "admin-1", Username: "boss"},
				&auth.TokenPair{AccessToken: "access", RefreshToken: "refresh"},
				nil,
			).Once()

		w, resp := doJSON(t, r, http.MethodPost, "/api/admin/login", body)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Login successful", resp["message"])
		data := resp["data"].(map[string]any)
		assert.Equal(t, "access", data["accessToken"])
		a := data["admin"].(map[string]any)
		assert.Equal(t, "boss", a["username"])
	})

	t.Run("Missing Credentials", func(t *testing.T) {
		mockSvc := new(MockAdminService)
		r := adminTestRouter(mockSvc)

		mockSvc.On("Login", mock.Anything, "", "").
			Return(nil, nil, admin.ErrMissingCredentials).Once()

		w, resp := doJSON(t, r, http.MethodPost, "/api/admin/login", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, admin.ErrMissingCredentials.Error(), resp["message"])
	})

	t.Run("Invalid Credentials", func(t *testing.T) {
		mockSvc := new(MockAdminService)
		r := adminTestRouter(mockSvc)

		mockSvc.On("Login", mock.Anything, "boss", "wrong").
			Return(nil, nil, admin.ErrInvalidCredentials).Once()

		w, resp := doJSON(t, r, http.MethodPost, "/api/admin/login",
			`{"username": "boss", "password": "wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, admin.ErrInvalidCredentials.Error(), resp["message"])
	})
}
