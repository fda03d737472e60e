package auth

import (
	"context"
	"errors"
	"strings"
	"time"
)

// AuthUseCase describes authentication/registration behavior.
type AuthUseCase interface {
	SignUp(ctx context.Context, email, password, username string) (AuthResult, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
	CheckEmail(ctx context.Context, email string) (bool, error)
}

// AuthResult is what a successful signup/login hands back to the transport:
// the identity record plus a freshly minted token.
type AuthResult struct {
	User  User
	Token string
}

type authService struct {
	repo   UserRepository
	hasher PasswordHasher
	tokens TokenService
}

// NewAuthService returns default implementation of AuthUseCase.
func NewAuthService(repo UserRepository, hasher PasswordHasher, tokens TokenService) AuthUseCase {
	return &authService{repo: repo, hasher: hasher, tokens: tokens}
}

func (s *authService) SignUp(ctx context.Context, email, password, username string) (AuthResult, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return AuthResult{}, ErrMissingFields
	}
	email = NormalizeEmail(email)

	// Fail fast on a known email; a concurrent signup slipping past this
	// check is caught by the store's uniqueness constraint in Create.
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return AuthResult{}, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return AuthResult{}, err
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return AuthResult{}, err
	}

	user, err := s.repo.Create(ctx, User{
		Email:        email,
		Username:     strings.TrimSpace(username),
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return AuthResult{}, err
	}

	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: token}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return AuthResult{}, ErrMissingFields
	}

	user, err := s.repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// Same error as a wrong password, so callers cannot
			// enumerate registered emails.
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, err
	}
	if !s.hasher.Check(password, user.PasswordHash) {
		return AuthResult{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: token}, nil
}

func (s *authService) CheckEmail(ctx context.Context, email string) (bool, error) {
	if strings.TrimSpace(email) == "" {
		return false, ErrMissingFields
	}
	return s.repo.ExistsByEmail(ctx, NormalizeEmail(email))
}
