package rest

import (
	"errors"
	"net/http"

	"minimart-be/internal/admin"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc admin.Service
}

func NewAdminHandler(svc admin.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	a, tokens, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrMissingCredentials):
			respondError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, admin.ErrInvalidCredentials):
			respondError(c, http.StatusUnauthorized, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "Error during login")
		}
		return
	}

	respondMessage(c, http.StatusOK, "Login successful", gin.H{
		"accessToken":  tokens.AccessToken,
		"refreshToken": tokens.RefreshToken,
		"admin": gin.H{
			"id":       a.ID,
			"username": a.Username,
		},
	})
}
