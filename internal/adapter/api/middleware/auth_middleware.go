package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"mentorhub/internal/infrastructure/token"
	"mentorhub/pkg/errors"
	"mentorhub/pkg/response"
)

type AuthMiddleware struct {
	tokens *token.Manager
}

func NewAuthMiddleware(tokens *token.Manager) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
	}
}

// Authenticate verifies the bearer token and stores uid and userType on the
// context. Token expiry is handled here, once, for every route: the client
// gets the distinct SESSION_EXPIRED code and is expected to clear local
// auth state and return to login.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, errors.Unauthorized("Authorization header is required", nil))
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return response.Error(c, errors.Unauthorized("Invalid authorization format", nil))
		}

		claims, err := m.tokens.Parse(parts[1])
		if err != nil {
			return response.Error(c, err)
		}

		c.Set("uid", claims.Subject)
		c.Set("userType", claims.UserType)

		return next(c)
	}
}
