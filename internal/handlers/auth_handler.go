package handlers

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/job-portal/internal/models"
	"alfredoptarigan/job-portal/internal/services"
)

var validate = validator.New()

type AuthHandler struct {
	tokenService services.TokenService
	tokenTTL     time.Duration
	production   bool
}

func NewAuthHandler(
	tokenService services.TokenService,
	tokenTTL time.Duration,
	production bool,
) *AuthHandler {
	return &AuthHandler{
		tokenService: tokenService,
		tokenTTL:     tokenTTL,
		production:   production,
	}
}

// HandleIssueToken is the POST /jwt endpoint. It signs a session token for
// the submitted identity and hands it back as an HTTP-only cookie.
func (h *AuthHandler) HandleIssueToken(c *fiber.Ctx) error {
	var req models.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid JSON body",
		})
	}

	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "an email or userEmail field is required",
		})
	}

	token, err := h.tokenService.Issue(req.IdentityEmail())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to issue token",
		})
	}

	c.Cookie(h.sessionCookie(token, time.Now().Add(h.tokenTTL)))

	return c.JSON(fiber.Map{"message": "token issued"})
}

// HandleLogout is the POST /logout endpoint. Logout only clears the cookie;
// an already-issued token stays valid until its natural expiry.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	c.Cookie(h.sessionCookie("", time.Now().Add(-time.Hour)))

	return c.JSON(fiber.Map{"message": "logged out"})
}

// sessionCookie builds the token cookie. Production deployments serve the
// frontend from another origin, so the cookie must be secure and
// cross-site-sendable there; everywhere else it stays same-site-strict.
func (h *AuthHandler) sessionCookie(value string, expires time.Time) *fiber.Cookie {
	cookie := &fiber.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	}

	if h.production {
		cookie.Secure = true
		cookie.SameSite = fiber.CookieSameSiteNoneMode
	}

	return cookie
}
