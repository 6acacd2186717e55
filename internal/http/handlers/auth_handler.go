package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "github.com/isuruAnjula/E-Commerce-Website/internal/log"
	"github.com/isuruAnjula/E-Commerce-Website/internal/repos"
	"github.com/isuruAnjula/E-Commerce-Website/internal/services"
	"github.com/isuruAnjula/E-Commerce-Website/internal/validate"
)

type AuthHandler struct {
	Auth *services.AuthService
}

// The frontend calls /login/alice&s3cret: one path segment carrying both
// values. The router keeps it whole; split at the first ampersand.
func credentials(c *fiber.Ctx) (string, string) {
	return validate.Credentials(c.Params("credentials"))
}

// POST /login/:credentials
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	return h.login(c, repos.UserStore)
}

// POST /adminlogin/:credentials
func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	return h.login(c, repos.AdminStore)
}

func (h *AuthHandler) login(c *fiber.Ctx, store repos.CredentialStore) error {
	username, password := credentials(c)
	switch err := h.Auth.Login(c.UserContext(), store, username, password); {
	case errors.Is(err, services.ErrBadCreds):
		applog.Security(c, "auth.login.fail", map[string]any{"username": username, "store": string(store)})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid username or password"})
	case err != nil:
		applog.Error(c, "auth.login.error", err, map[string]any{"store": string(store)})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server Error"})
	}
	applog.Audit(c, "auth.login.success", map[string]any{"username": username, "store": string(store)})
	return c.JSON(fiber.Map{"message": "Login successful"})
}

// POST /signup/:credentials
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	username, password := credentials(c)
	if err := h.Auth.Signup(c.UserContext(), username, password); err != nil {
		applog.Error(c, "auth.signup.fail", err, map[string]any{"username": username})
		return c.Status(fiber.StatusInternalServerError).JSON("Error adding user to the database.")
	}
	applog.Audit(c, "auth.signup", map[string]any{"username": username})
	return c.JSON("New user added successfully to the database.")
}
