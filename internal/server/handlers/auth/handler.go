package auth

import (
	"errors"
	"fmt"

	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/indexadmin/indexadmin/internal/auth"
	"github.com/indexadmin/indexadmin/internal/server/validation"
	"go.uber.org/zap"
)

type Handler struct {
	authSvc *auth.Service

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(authSvc *auth.Service, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		authSvc: authSvc,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/auth")

	r.Use(h.errorsHandler)
	r.Post("/verify", h.verify)
	r.Post("/login", validation.DecorateWithBodyEx(h.validator, h.login))
}

// verify reads the token from the body, falling back to the Authorization
// header.
func (h *Handler) verify(c *fiber.Ctx) error {
	req := new(VerifyRequest)
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("invalid request body: %s", err))
		}
	}

	token := req.Token
	if token == "" {
		token = c.Get(fiber.HeaderAuthorization)
	}

	identity, err := h.authSvc.Verify(token)
	if err != nil {
		return fmt.Errorf("failed to verify token: %w", err)
	}

	return c.JSON(VerifyResponse{
		Success: true,
		User:    h.toResponse(identity),
	})
}

func (h *Handler) login(c *fiber.Ctx, req *LoginRequest) error {
	identity, token, err := h.authSvc.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return fmt.Errorf("failed to login: %w", err)
	}

	return c.JSON(LoginResponse{
		Success: true,
		Token:   token,
		User:    h.toResponse(identity),
	})
}

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, auth.ErrTokenMissing):
		return fiber.NewError(fiber.StatusBadRequest, "Token is required")
	case errors.Is(err, auth.ErrTokenExpired):
		return fiber.NewError(fiber.StatusUnauthorized, "Token expired")
	case errors.Is(err, auth.ErrTokenInvalid):
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	case errors.Is(err, auth.ErrInvalidCredentials):
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	return err //nolint:wrapcheck //already wrapped
}

func (h *Handler) toResponse(identity *auth.Identity) UserResponse {
	return UserResponse{
		ID:      identity.ID,
		Email:   identity.Email,
		IsAdmin: identity.IsAdmin,
	}
}
