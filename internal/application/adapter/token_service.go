package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenClaims represents the claims contained in a JWT access token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService validates access tokens issued by the surrounding
// application's auth system. This service never issues refresh tokens or
// manages sessions.
type TokenService interface {
	// GenerateAccessToken generates a signed access token for a user.
	// Used by tooling and tests; production tokens come from the auth system.
	GenerateAccessToken(ctx context.Context, userID uuid.UUID, email string, ttl time.Duration) (string, error)

	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
