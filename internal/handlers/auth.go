package handlers

import (
	"log"

	"tienda/internal/clients/eshop"
	"tienda/internal/config"
	"tienda/internal/services/auth"
	"tienda/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

const (
	loginPage    = "/node/login"
	registerPage = "/node/register"
	storePage    = "/node/store"

	sessionCookie = "token"
	cookieMaxAge  = 24 * 60 * 60
)

// AuthHandler owns the login and registration form routes. Both follow
// the form-handler convention: every failure is a 302 back to the form
// page with an `error` query parameter, never a JSON error body.
type AuthHandler struct {
	authService *auth.Service
}

func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles the submitted login form.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	if email == "" || password == "" {
		return response.RedirectWithError(c, loginPage, "Datos inválidos")
	}

	token, claims, err := h.authService.Login(c.Context(), email, password)
	if err != nil {
		log.Printf("login failed for %s: %v", email, err)
		return response.RedirectWithError(c, loginPage, err.Error())
	}

	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    token,
		HTTPOnly: true,
		Secure:   config.IsProduction(),
		Path:     "/",
		MaxAge:   cookieMaxAge,
	})

	if claims.IsAdmin {
		return c.Redirect(storePage, fiber.StatusFound)
	}
	return c.Redirect("/", fiber.StatusFound)
}

// Register handles the submitted registration form. All six fields are
// mandatory; the payload is forwarded as-is, the remote API hashes the
// password.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	req := eshop.RegisterRequest{
		Name:     c.FormValue("name"),
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
		Phone:    c.FormValue("phone"),
		City:     c.FormValue("city"),
		Country:  c.FormValue("country"),
	}

	if req.Name == "" || req.Email == "" || req.Password == "" ||
		req.Phone == "" || req.City == "" || req.Country == "" {
		return response.RedirectWithError(c, registerPage, "Datos inválidos")
	}

	if err := h.authService.Register(c.Context(), req); err != nil {
		log.Printf("registration failed for %s: %v", req.Email, err)
		return response.RedirectWithError(c, registerPage, err.Error())
	}

	return c.Redirect(loginPage, fiber.StatusFound)
}

// Logout clears the session cookie and returns to the site root.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    "",
		HTTPOnly: true,
		Secure:   config.IsProduction(),
		Path:     "/",
		MaxAge:   -1,
	})
	return c.Redirect("/", fiber.StatusFound)
}
