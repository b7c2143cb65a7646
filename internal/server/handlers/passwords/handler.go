package passwords

import (
	"errors"
	"fmt"

	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/indexadmin/indexadmin/internal/passwords"
	"github.com/indexadmin/indexadmin/internal/server/validation"
	"go.uber.org/zap"
)

type Handler struct {
	passwordsSvc *passwords.Service

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(passwordsSvc *passwords.Service, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		passwordsSvc: passwordsSvc,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/users/passwords")

	r.Use(h.errorsHandler)
	r.Get("/", h.list)
	r.Post("/approve", validation.DecorateWithBodyEx(h.validator, h.approve))
	r.Post("/reject", validation.DecorateWithBodyEx(h.validator, h.reject))
	r.Post("/revoke", validation.DecorateWithBodyEx(h.validator, h.revoke))
}

func (h *Handler) list(c *fiber.Ctx) error {
	records, err := h.passwordsSvc.List(c.Context())
	if err != nil {
		return fmt.Errorf("failed to list passwords: %w", err)
	}

	response := ListResponse{
		Success:   true,
		Passwords: make([]PasswordResponse, len(records)),
	}
	for i, record := range records {
		response.Passwords[i] = h.toResponse(record)
	}

	return c.JSON(response)
}

func (h *Handler) approve(c *fiber.Ctx, req *ApproveRequest) error {
	if err := h.passwordsSvc.Approve(c.Context(), req.Email, req.ApprovedBy); err != nil {
		return fmt.Errorf("failed to approve password: %w", err)
	}

	return c.JSON(MessageResponse{
		Success: true,
		Message: fmt.Sprintf("Password for %s approved", req.Email),
	})
}

func (h *Handler) reject(c *fiber.Ctx, req *RejectRequest) error {
	if err := h.passwordsSvc.Reject(c.Context(), req.Email, req.RejectedBy); err != nil {
		return fmt.Errorf("failed to reject password: %w", err)
	}

	return c.JSON(MessageResponse{
		Success: true,
		Message: fmt.Sprintf("Password for %s rejected and removed", req.Email),
	})
}

func (h *Handler) revoke(c *fiber.Ctx, req *RevokeRequest) error {
	if err := h.passwordsSvc.Revoke(c.Context(), req.Email, req.RevokedBy); err != nil {
		return fmt.Errorf("failed to revoke password: %w", err)
	}

	return c.JSON(MessageResponse{
		Success: true,
		Message: fmt.Sprintf("Password approval for %s revoked", req.Email),
	})
}

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, passwords.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Password record not found")
	case errors.Is(err, passwords.ErrValidation):
		return fiber.NewError(fiber.StatusBadRequest, "Email and actor are required")
	}

	return err //nolint:wrapcheck //already wrapped
}

func (h *Handler) toResponse(record passwords.Record) PasswordResponse {
	response := PasswordResponse{
		Email:         record.Email,
		PlainPassword: record.PlainPassword,
		GeneratedAt:   record.GeneratedAt,
		Approved:      record.IsApproved(),
		ApprovedAt:    nil,
		ApprovedBy:    "",
	}

	if record.Approval != nil {
		at := record.Approval.At
		response.ApprovedAt = &at
		response.ApprovedBy = record.Approval.By
	}

	return response
}
