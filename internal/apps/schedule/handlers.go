package schedule

import (
	"errors"

	"github.com/bemnascer/bemnascer-backend/internal/dto"
	"github.com/bemnascer/bemnascer-backend/internal/ownership"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ScheduleHandler struct {
	service *ScheduleService
}

func NewScheduleHandler(service *ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

func (h *ScheduleHandler) Create(c *fiber.Ctx) error {
	userID, err := ownership.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	entry, err := h.service.Create(userID, req)
	if err != nil {
		return h.mapError(c, err, "Failed to create schedule")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (h *ScheduleHandler) GetDay(c *fiber.Ctx) error {
	userID, err := ownership.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	day := c.Query("day")
	if day == "" {
		return badRequest(c, "day query parameter is required")
	}

	entries, err := h.service.GetDay(userID, day)
	if err != nil {
		return h.mapError(c, err, "Failed to fetch schedules")
	}
	return c.JSON(entries)
}

func (h *ScheduleHandler) Update(c *fiber.Ctx) error {
	userID, err := ownership.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	scheduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid schedule ID")
	}

	var req UpdateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	entry, err := h.service.Update(userID, scheduleID, req)
	if err != nil {
		return h.mapError(c, err, "Failed to update schedule")
	}
	return c.JSON(entry)
}

func (h *ScheduleHandler) Delete(c *fiber.Ctx) error {
	userID, err := ownership.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	scheduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid schedule ID")
	}

	if err := h.service.Delete(userID, scheduleID); err != nil {
		return h.mapError(c, err, "Failed to delete schedule")
	}
	return c.JSON(dto.MessageResponse{Message: "Schedule deleted successfully"})
}

func (h *ScheduleHandler) mapError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrInvalidTime),
		errors.Is(err, ErrInvalidName):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, ErrSlotTaken):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, ErrScheduleNotFound), errors.Is(err, ownership.ErrAccountNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: fallback,
		})
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: msg,
	})
}
