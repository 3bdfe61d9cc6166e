package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/auth-service/internal/api/dto"
	"github.com/spec-kit/auth-service/internal/auth"
	"github.com/spec-kit/auth-service/internal/service"
)

// UsersHandler exposes the auth endpoints.
type UsersHandler struct {
	auth *service.AuthService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService) *UsersHandler {
	return &UsersHandler{auth: authService}
}

// Test handles GET /api/users/test.
func (h *UsersHandler) Test(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"msg": "Users Works"})
}

// Register handles POST /api/users/register.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	identity, err := h.auth.Register(c.UserContext(), req.Name, req.Email, req.Password, req.PasswordConfirmation)
	if err != nil {
		return err
	}

	return c.JSON(dto.NewIdentityResponse(identity))
}

// Login handles POST /api/users/login.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	token, _, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.LoginResponse{Success: true, Token: "Bearer " + token})
}

// Current handles GET /api/users/current. The auth middleware has already
// attached the stored identity.
func (h *UsersHandler) Current(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	return c.JSON(dto.CurrentResponse{
		ID:    identity.ID,
		Name:  identity.Name,
		Email: identity.Email,
	})
}
