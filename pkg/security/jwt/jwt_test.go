package jwt

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourfit/backend/pkg/auth"
)

func testUser() auth.User {
	return auth.User{
		ID:        uuid.New(),
		Email:     "user@example.com",
		CreatedAt: time.Now().UTC(),
	}
}

func TestGenerateAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("super-secret", "yourfit-backend", time.Hour)
	user := testUser()

	tok, err := gen.Generate(context.Background(), user)
	require.NoError(t, err)

	claims, err := gen.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	// The constructor rejects non-positive ttls, so force one to mint an
	// already-expired token.
	gen := NewGenerator("secret", "", time.Hour)
	gen.ttl = -time.Second

	tok, err := gen.Generate(context.Background(), testUser())
	require.NoError(t, err)

	_, err = gen.Verify(tok)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewGenerator("right-secret", "", time.Hour).Generate(context.Background(), testUser())
	require.NoError(t, err)

	_, err = NewGenerator("wrong-secret", "", time.Hour).Verify(tok)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerify_TamperedPayload(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("secret", "", time.Hour)
	tok, err := gen.Generate(context.Background(), testUser())
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)

	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = gen.Verify(tampered)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("secret", "", time.Hour)

	for _, tok := range []string{"", "not.a.jwt", "garbage"} {
		_, err := gen.Verify(tok)
		assert.ErrorIs(t, err, auth.ErrInvalidToken, "token %q", tok)
	}
}

func TestVerify_WrongIssuer(t *testing.T) {
	t.Parallel()

	tok, err := NewGenerator("secret", "other-service", time.Hour).Generate(context.Background(), testUser())
	require.NoError(t, err)

	_, err = NewGenerator("secret", "yourfit-backend", time.Hour).Verify(tok)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
