package usecase

import (
	"context"

	"mentorhub/internal/infrastructure/google"
)

type AuthProvider interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	GetUserByEmail(ctx context.Context, email string) (string, error)
	VerifyPassword(ctx context.Context, email, password string) (string, error)
	UpdateUserPassword(ctx context.Context, uid, newPassword string) error
	DeleteUser(ctx context.Context, uid string) error
}

type GoogleVerifier interface {
	Verify(idToken string) (*google.Claims, error)
}

type TokenIssuer interface {
	Issue(userID, userType string) (string, error)
}
