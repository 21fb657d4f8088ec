package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/tasklist-service/internal/api/dto"
	"github.com/spec-kit/tasklist-service/internal/service"
)

// UsersHandler exposes registration and login endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{users: userService}
}

// Register handles POST /auth/register.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "name and password required")
	}

	user, err := h.users.Register(c.UserContext(), req.Name, req.Password)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.UserResponse{ID: user.ID, Name: user.Name},
	})
}

// Login handles POST /auth/login.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "name and password required")
	}

	user, token, expiresAt, err := h.users.Login(c.UserContext(), req.Name, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": dto.LoginResponse{
			ID:        user.ID,
			Name:      user.Name,
			Token:     token,
			ExpiresAt: expiresAt,
		},
	})
}
