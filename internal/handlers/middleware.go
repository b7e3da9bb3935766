package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/job-portal/internal/services"
)

const (
	sessionCookieName = "token"
	localsEmailKey    = "userEmail"
)

// RequireSession gates an endpoint on a valid session cookie. No cookie at
// all is Unauthorized; a cookie that fails verification is Forbidden. The
// verified email lands in Locals for the handler's ownership check.
func RequireSession(tokenService services.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(sessionCookieName)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "unauthorized access",
			})
		}

		claims, err := tokenService.Verify(tokenString)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "forbidden access",
			})
		}

		c.Locals(localsEmailKey, claims.Email)
		return c.Next()
	}
}
