package term

import (
	"errors"

	"github.com/bemnascer/bemnascer-backend/internal/dto"
	"github.com/bemnascer/bemnascer-backend/internal/ownership"
	"github.com/gofiber/fiber/v2"
)

type TermHandler struct {
	service *TermService
}

func NewTermHandler(service *TermService) *TermHandler {
	return &TermHandler{service: service}
}

func (h *TermHandler) Get(c *fiber.Ctx) error {
	t, err := h.service.Get(c.Query("type"))
	if err != nil {
		return h.mapError(c, err, "Failed to fetch term")
	}
	return c.JSON(t)
}

func (h *TermHandler) Accept(c *fiber.Ctx) error {
	userID, err := ownership.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	if err := h.service.Accept(userID, c.Query("type")); err != nil {
		return h.mapError(c, err, "Failed to accept term")
	}
	return c.JSON(dto.MessageResponse{Message: "Term accepted"})
}

func (h *TermHandler) Update(c *fiber.Ctx) error {
	var req UpdateTermRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.service.Update(c.Query("type"), req); err != nil {
		return h.mapError(c, err, "Failed to update term")
	}
	return c.JSON(dto.MessageResponse{Message: "Term updated"})
}

func (h *TermHandler) mapError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, ErrInvalidDescription):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, ErrTermNotFound), errors.Is(err, ownership.ErrAccountNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: fallback,
		})
	}
}
