package handlers

import (
	"errors"
	"time"

	"github.com/bemnascer/bemnascer-backend/internal/dto"
	"github.com/bemnascer/bemnascer-backend/internal/ownership"
	"github.com/bemnascer/bemnascer-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AccountHandler struct {
	accountService *services.AccountService
}

func NewAccountHandler(accountService *services.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

func (h *AccountHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterClientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	client, err := h.accountService.RegisterClient(&req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, services.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to register",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(client)
}

func (h *AccountHandler) GetMe(c *fiber.Ctx) error {
	userID, err := ownership.GetUserID(c)
	if err != nil {
		return h.unauthorized(c)
	}

	client, err := h.accountService.GetMyData(userID)
	if err != nil {
		return h.mapError(c, err, "Failed to fetch profile")
	}
	return c.JSON(client)
}

func (h *AccountHandler) UpdateMe(c *fiber.Ctx) error {
	userID, err := ownership.GetUserID(c)
	if err != nil {
		return h.unauthorized(c)
	}

	var req dto.UpdateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	client, err := h.accountService.UpdateClient(userID, &req)
	if err != nil {
		return h.mapError(c, err, "Failed to update profile")
	}
	return c.JSON(client)
}

func (h *AccountHandler) GetHome(c *fiber.Ctx) error {
	userID, err := ownership.GetUserID(c)
	if err != nil {
		return h.unauthorized(c)
	}

	resp, err := h.accountService.GetHome(userID, time.Now().UTC())
	if err != nil {
		return h.mapError(c, err, "Failed to fetch home data")
	}
	return c.JSON(resp)
}

func (h *AccountHandler) DeleteMe(c *fiber.Ctx) error {
	userID, err := ownership.GetUserID(c)
	if err != nil {
		return h.unauthorized(c)
	}

	if err := h.accountService.DeleteSelf(userID); err != nil {
		return h.mapError(c, err, "Failed to delete account")
	}
	return c.JSON(fiber.Map{"message": "Account deleted successfully"})
}

// --- master endpoints ---

func (h *AccountHandler) ListClients(c *fiber.Ctx) error {
	items, err := h.accountService.ListClients()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list clients",
		})
	}
	return c.JSON(items)
}

func (h *AccountHandler) DeleteClient(c *fiber.Ctx) error {
	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user id",
		})
	}

	if err := h.accountService.DeleteByMaster(targetID); err != nil {
		return h.mapError(c, err, "Failed to delete account")
	}
	return c.JSON(fiber.Map{"message": "Account deleted successfully"})
}

func (h *AccountHandler) SetBlocked(c *fiber.Ctx) error {
	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user id",
		})
	}

	var req dto.BlockUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.accountService.SetBlocked(targetID, req.Blocked); err != nil {
		return h.mapError(c, err, "Failed to update user")
	}
	return c.JSON(dto.MessageResponse{Message: "User updated"})
}

func (h *AccountHandler) CreateMaster(c *fiber.Ctx) error {
	var req dto.CreateMasterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	user, err := h.accountService.CreateMaster(&req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, services.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create master",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	})
}

func (h *AccountHandler) ListMasters(c *fiber.Ctx) error {
	items, err := h.accountService.ListMasters()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list masters",
		})
	}
	return c.JSON(items)
}

func (h *AccountHandler) DeleteMaster(c *fiber.Ctx) error {
	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user id",
		})
	}

	if err := h.accountService.DeleteMaster(targetID); err != nil {
		return h.mapError(c, err, "Failed to delete master")
	}
	return c.JSON(fiber.Map{"message": "Account deleted successfully"})
}

func (h *AccountHandler) unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}

func (h *AccountHandler) mapError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, ownership.ErrAccountNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrNotDeletable):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: fallback,
		})
	}
}
