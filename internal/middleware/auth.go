// Package middleware provides HTTP middleware for the storefront.
package middleware

import (
	"log"

	"tienda/internal/models"
	"tienda/internal/services/auth"
	"tienda/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// CookieAuth reads the session cookie and, when it decodes, stores the
// claims and the raw bearer token in the request context. An absent or
// malformed token means the caller is anonymous; the request proceeds.
func CookieAuth(c *fiber.Ctx) error {
	token := c.Cookies("token")
	if token == "" {
		return c.Next()
	}

	claims, err := auth.DecodeClaims(token)
	if err != nil {
		log.Printf("cookie token decode failed: %v", err)
		return c.Next()
	}

	c.Locals("claims", claims)
	c.Locals("token", token)
	return c.Next()
}

// RequireAdmin rejects callers whose decoded claims do not carry
// isAdmin. It relies on CookieAuth having run first.
func RequireAdmin(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok || !claims.IsAdmin {
		return response.Unauthorized(c)
	}
	return c.Next()
}

// BearerToken returns the raw token stored by CookieAuth, or "".
func BearerToken(c *fiber.Ctx) string {
	token, _ := c.Locals("token").(string)
	return token
}
