package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/taskflow/taskflow-api/auth"
	"github.com/taskflow/taskflow-api/handlers"
)

// RequireAuth verifies the bearer token on every request and binds the
// resolved user id to the request context under auth.UserIDKey. Requests
// without a valid token never reach the handler.
func RequireAuth(creds *auth.CredentialService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c, "No autorizado, token no proporcionado")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return unauthorized(c, "Formato de token inválido")
		}

		userID, err := creds.VerifyToken(tokenString)
		if err != nil {
			return unauthorized(c, "Token inválido o expirado")
		}

		c.Locals(auth.UserIDKey, userID)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(handlers.Response{
		Success: false,
		Message: message,
	})
}
