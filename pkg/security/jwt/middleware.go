package jwt

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/yourfit/backend/pkg/auth"
)

// identityKey is the fiber locals slot holding verified auth.Claims.
const identityKey = "authIdentity"

// NewAuthMiddleware returns a Fiber middleware guarding protected routes.
// It requires the exact "Bearer " scheme (case-sensitive) and rejects with a
// uniform 401 on any missing, malformed or unverifiable credential before the
// handler runs.
func NewAuthMiddleware(tokens auth.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr, ok := strings.CutPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
		if !ok || tokenStr == "" {
			return unauthorized(c)
		}
		claims, err := tokens.Verify(tokenStr)
		if err != nil {
			return unauthorized(c)
		}
		c.Locals(identityKey, claims)
		return c.Next()
	}
}

// IdentityFromContext returns the claims attached by NewAuthMiddleware.
func IdentityFromContext(c *fiber.Ctx) (auth.Claims, bool) {
	claims, ok := c.Locals(identityKey).(auth.Claims)
	return claims, ok
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"message": "Unauthorized",
	})
}
