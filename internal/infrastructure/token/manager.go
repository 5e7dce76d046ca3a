package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	apperrors "mentorhub/pkg/errors"
)

type Claims struct {
	UserType string `json:"userType"`
	jwt.RegisteredClaims
}

// Manager issues and verifies API session tokens.
type Manager struct {
	secret []byte
	expiry time.Duration
}

func NewManager(secret string, expirySeconds int64) *Manager {
	return &Manager{
		secret: []byte(secret),
		expiry: time.Duration(expirySeconds) * time.Second,
	}
}

func (m *Manager) Issue(userID, userType string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserType: userType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Parse verifies a session token. An expired token maps to the distinct
// SESSION_EXPIRED error so the middleware can force re-login instead of
// returning a generic unauthorized response.
func (m *Manager) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.SessionExpired(err)
		}
		return nil, apperrors.Unauthorized("Invalid or malformed token", err)
	}

	return claims, nil
}
