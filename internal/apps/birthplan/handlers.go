package birthplan

import (
	"errors"

	"github.com/bemnascer/bemnascer-backend/internal/dto"
	"github.com/bemnascer/bemnascer-backend/internal/ownership"
	"github.com/gofiber/fiber/v2"
)

type BirthPlanHandler struct {
	service *BirthPlanService
}

func NewBirthPlanHandler(service *BirthPlanService) *BirthPlanHandler {
	return &BirthPlanHandler{service: service}
}

func (h *BirthPlanHandler) List(c *fiber.Ctx) error {
	userID, err := ownership.GetUserID(c)
	if err != nil {
		return h.unauthorized(c)
	}

	items, err := h.service.List(userID)
	if err != nil {
		return h.mapError(c, err, "Failed to fetch childbirth plans")
	}
	return c.JSON(items)
}

func (h *BirthPlanHandler) UpdateSelection(c *fiber.Ctx) error {
	userID, err := ownership.GetUserID(c)
	if err != nil {
		return h.unauthorized(c)
	}

	var req UpdateSelectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.service.UpdateSelection(userID, req); err != nil {
		return h.mapError(c, err, "Failed to update childbirth plan")
	}
	return c.JSON(dto.MessageResponse{Message: "Childbirth plan updated"})
}

func (h *BirthPlanHandler) Seed(c *fiber.Ctx) error {
	var req SeedPlansRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	created, err := h.service.Seed(req)
	if err != nil {
		return h.mapError(c, err, "Failed to create childbirth plans")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"created": created})
}

func (h *BirthPlanHandler) unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}

func (h *BirthPlanHandler) mapError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, ErrPlanNotFound), errors.Is(err, ownership.ErrAccountNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: fallback,
		})
	}
}
