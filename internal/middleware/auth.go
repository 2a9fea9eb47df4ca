package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
)

// UserScopeKey is the locals key holding the authenticated user scope.
const UserScopeKey = "user_scope"

// Auth resolves the opaque user scope from the Bearer token. Identity is
// an external concern; any non-empty token is accepted and its value keys
// the user's persistence scope. Public paths (health, swagger) bypass it.
func Auth() fiber.Handler {
	publicPrefixes := []string{"/api/v1/health", "/swagger"}

	return func(c fiber.Ctx) error {
		path := c.Path()

		for _, prefix := range publicPrefixes {
			if strings.HasPrefix(path, prefix) {
				return c.Next()
			}
		}

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing Authorization header",
			})
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid Authorization header format, expected 'Bearer <token>'",
			})
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "empty bearer token",
			})
		}

		c.Locals(UserScopeKey, token)

		return c.Next()
	}
}

// UserScope returns the authenticated user scope for a request.
func UserScope(c fiber.Ctx) string {
	if v, ok := c.Locals(UserScopeKey).(string); ok {
		return v
	}
	return ""
}
