package error

import "errors"

// Auth boundary errors. This service does not manage users or sessions; it
// only validates tokens issued by the surrounding application.
var (
	// ErrInvalidToken is returned when a token is invalid or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token has expired.
	ErrExpiredToken = errors.New("token has expired")

	// ErrMissingToken is returned when no token was provided.
	ErrMissingToken = errors.New("missing token")
)

// AuthErrorCode defines error codes for auth boundary errors.
type AuthErrorCode string

const (
	ErrCodeInvalidToken AuthErrorCode = "AUTH-030001"
	ErrCodeExpiredToken AuthErrorCode = "AUTH-030002"
	ErrCodeMissingToken AuthErrorCode = "AUTH-030003"
	ErrCodeRateLimited  AuthErrorCode = "AUTH-030004"
)
