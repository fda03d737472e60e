package jwt

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedApp(gen *Generator) (*fiber.App, *bool) {
	invoked := false
	app := fiber.New()
	app.Get("/protected", NewAuthMiddleware(gen), func(c *fiber.Ctx) error {
		invoked = true
		claims, ok := IdentityFromContext(c)
		if !ok {
			return c.SendStatus(http.StatusInternalServerError)
		}
		return c.JSON(fiber.Map{"id": claims.UserID, "email": claims.Email})
	})
	return app, &invoked
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("secret", "", time.Hour)
	user := testUser()
	tok, err := gen.Generate(context.Background(), user)
	require.NoError(t, err)

	app, invoked := protectedApp(gen)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tok)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, *invoked)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, user.ID.String(), body["id"])
	assert.Equal(t, user.Email, body["email"])
}

func TestAuthMiddleware_RejectsWithoutInvokingHandler(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("secret", "", time.Hour)

	valid, err := gen.Generate(context.Background(), testUser())
	require.NoError(t, err)

	expiredGen := NewGenerator("secret", "", time.Hour)
	expiredGen.ttl = -time.Minute
	expired, err := expiredGen.Generate(context.Background(), testUser())
	require.NoError(t, err)

	foreign, err := NewGenerator("other-secret", "", time.Hour).Generate(context.Background(), testUser())
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"lowercase scheme", "bearer " + valid},
		{"no space after scheme", "Bearer" + valid},
		{"wrong scheme", "Basic " + valid},
		{"scheme only", "Bearer "},
		{"expired token", "Bearer " + expired},
		{"wrong secret", "Bearer " + foreign},
		{"malformed token", "Bearer not.a.jwt"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app, invoked := protectedApp(gen)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tc.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.False(t, *invoked)

			var body map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, "Unauthorized", body["message"])
			assert.Equal(t, false, body["success"])
		})
	}
}
