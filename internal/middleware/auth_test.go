package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tienda/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp() *fiber.App {
	app := fiber.New()
	app.Get("/whoami", CookieAuth, func(c *fiber.Ctx) error {
		claims, ok := c.Locals("claims").(*models.UserClaims)
		if !ok {
			return c.JSON(fiber.Map{"anonymous": true})
		}
		return c.JSON(fiber.Map{"userId": claims.UserID, "isAdmin": claims.IsAdmin})
	})
	app.Get("/admin", CookieAuth, RequireAdmin, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func getWithCookie(t *testing.T, app *fiber.App, path, cookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: cookie})
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func adminCookie(t *testing.T, isAdmin bool) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, models.UserClaims{
		UserID:  "u-1",
		IsAdmin: isAdmin,
	}).SignedString([]byte("remote-secret"))
	require.NoError(t, err)
	return token
}

func TestCookieAuth_AnonymousFallback(t *testing.T) {
	app := testApp()

	// no cookie at all
	resp := getWithCookie(t, app, "/whoami", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// garbage cookie degrades to anonymous instead of failing
	resp = getWithCookie(t, app, "/whoami", "not-a-jwt")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireAdmin(t *testing.T) {
	app := testApp()

	resp := getWithCookie(t, app, "/admin", adminCookie(t, true))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = getWithCookie(t, app, "/admin", adminCookie(t, false))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = getWithCookie(t, app, "/admin", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = getWithCookie(t, app, "/admin", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
