package auth

import (
	"context"
	"errors"
)

// ErrInvalidToken covers every token verification failure: malformed input,
// signature mismatch and expiry. Callers must not learn which one it was.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the identity a verified token asserts.
type Claims struct {
	UserID string
	Email  string
}

// TokenService abstracts stateless session tokens (e.g., JWT).
// It allows use cases to stay framework-agnostic.
type TokenService interface {
	Generate(ctx context.Context, user User) (string, error)
	Verify(tokenString string) (Claims, error)
}
