package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Nehalakshmi23/carrer-campus/internal/repositories"
	"github.com/Nehalakshmi23/carrer-campus/internal/services"
)

// UserLocalKey is where RequireAuth stores the authenticated user on the
// request context.
const UserLocalKey = "user"

// RequireAuth validates the Bearer token and loads the caller's account
// into c.Locals before the handler runs.
func RequireAuth(authService services.AuthService, userRepo repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing token",
			})
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token format",
			})
		}

		userID, err := authService.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		user, err := userRepo.FindByID(userID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "User not found",
			})
		}

		c.Locals(UserLocalKey, user)
		return c.Next()
	}
}
