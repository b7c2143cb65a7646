package debug

import (
	"fmt"

	"github.com/go-core-fx/fiberfx/handler"
	"github.com/gofiber/fiber/v2"
	"github.com/indexadmin/indexadmin/internal/passwords"
	"github.com/indexadmin/indexadmin/internal/storage"
	"github.com/indexadmin/indexadmin/internal/users"
	"go.uber.org/zap"
)

type StorageResponse struct {
	Success        bool   `json:"success"`
	Mode           string `json:"mode,omitempty"`
	UsersCount     int    `json:"usersCount"`
	PasswordsCount int    `json:"passwordsCount"`
	Error          string `json:"error,omitempty"`
}

type Handler struct {
	store        storage.Store
	usersSvc     *users.Service
	passwordsSvc *passwords.Service

	logger *zap.Logger
}

func NewHandler(
	store storage.Store,
	usersSvc *users.Service,
	passwordsSvc *passwords.Service,
	logger *zap.Logger,
) handler.Handler {
	return &Handler{
		store:        store,
		usersSvc:     usersSvc,
		passwordsSvc: passwordsSvc,

		logger: logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/debug")

	r.Get("/storage", h.storage)
}

// storage always answers 200; failures are reported in the body.
func (h *Handler) storage(c *fiber.Ctx) error {
	response, err := h.inspect(c)
	if err != nil {
		h.logger.Error("storage inspection failed", zap.Error(err))
		return c.JSON(StorageResponse{
			Success: false,
			Error:   "failed to inspect storage",
		})
	}

	return c.JSON(response)
}

func (h *Handler) inspect(c *fiber.Ctx) (StorageResponse, error) {
	usersCount, err := h.usersSvc.Count(c.Context())
	if err != nil {
		return StorageResponse{}, fmt.Errorf("failed to count users: %w", err)
	}

	records, err := h.passwordsSvc.List(c.Context())
	if err != nil {
		return StorageResponse{}, fmt.Errorf("failed to count passwords: %w", err)
	}

	return StorageResponse{
		Success:        true,
		Mode:           string(h.store.Mode()),
		UsersCount:     usersCount,
		PasswordsCount: len(records),
		Error:          "",
	}, nil
}
