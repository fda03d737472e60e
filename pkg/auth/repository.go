package auth

import (
	"context"
	"errors"
)

// Common errors used by repository/use cases
var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingFields      = errors.New("email and password are required")
)

// UserRepository abstracts persistence concerns from the domain layer.
// Implementations must enforce email uniqueness: Create returns ErrEmailTaken
// on a uniqueness violation, which covers concurrent signup races the
// use case cannot see.
type UserRepository interface {
	// Create persists the user, assigns its ID and returns the stored record.
	Create(ctx context.Context, user User) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
