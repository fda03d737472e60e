package jwt

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yourfit/backend/pkg/auth"
)

// DefaultTTL is used when no token lifetime is configured.
const DefaultTTL = time.Hour

// Generator implements auth.TokenService with HS256 JWTs.
type Generator struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewGenerator(secret, issuer string, ttl time.Duration) *Generator {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Generator{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// Claims carries the identity payload next to the registered claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
	Email  string `json:"email"`
}

func (g *Generator) Generate(ctx context.Context, user auth.User) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    g.issuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
		},
		UserID: user.ID.String(),
		Email:  user.Email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(g.secret)
}

// Verify checks signature and expiry. Every failure collapses into
// auth.ErrInvalidToken so callers cannot tell an expired token from a
// tampered one.
func (g *Generator) Verify(tokenString string) (auth.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		return g.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil || !token.Valid {
		return auth.Claims{}, auth.ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return auth.Claims{}, auth.ErrInvalidToken
	}
	if g.issuer != "" && claims.Issuer != g.issuer {
		return auth.Claims{}, auth.ErrInvalidToken
	}
	return auth.Claims{UserID: claims.UserID, Email: claims.Email}, nil
}
