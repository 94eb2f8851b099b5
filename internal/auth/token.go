package auth

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type Claims struct {
	AccountID string `json:"account_id"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

var ErrInvalidToken = errors.New("invalid token")

// GenerateTokenPair signs an access token with the given TTL and a refresh
// token valid for 7 days.
func GenerateTokenPair(accountID, email, role string, accessTTL time.Duration) (*TokenPair, error) {
	access, err := sign(accountID, email, role, accessTTL, accessSecret())
	if err != nil {
		return nil, err
	}

	refresh, err := sign(accountID, email, role, 7*24*time.Hour, refreshSecret())
	if err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func sign(accountID, email, role string, ttl time.Duration, secret string) (string, error) {
	if secret == "" {
		return "", errors.New("JWT secret is not set")
	}

	claims := Claims{
		AccountID: accountID,
		Email:     email,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAccessToken validates the signature and expiry of an access token and
// returns its claims.
func ParseAccessToken(tokenStr string) (*Claims, error) {
	secret := accessSecret()
	if secret == "" {
		return nil, errors.New("JWT_ACCESS_SECRET is not set")
	}

	token, err := jwt.ParseWithClaims(
		tokenStr,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		},
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ExtractAccessToken pulls the bearer token from the cookie or the
// Authorization header.
func ExtractAccessToken(r *http.Request) string {
	if cookie, err := r.Cookie("access_token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}

func accessSecret() string  { return os.Getenv("JWT_ACCESS_SECRET") }
func refreshSecret() string { return os.Getenv("JWT_REFRESH_SECRET") }
