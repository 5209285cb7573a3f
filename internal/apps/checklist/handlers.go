package checklist

import (
	"errors"

	"github.com/bemnascer/bemnascer-backend/internal/dto"
	"github.com/bemnascer/bemnascer-backend/internal/ownership"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ChecklistHandler struct {
	service *ChecklistService
}

func NewChecklistHandler(service *ChecklistService) *ChecklistHandler {
	return &ChecklistHandler{service: service}
}

func (h *ChecklistHandler) CreateList(c *fiber.Ctx) error {
	userID, err := ownership.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req CreateListRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	list, err := h.service.CreateList(userID, req)
	if err != nil {
		return h.mapError(c, err, "Failed to create list")
	}
	return c.Status(fiber.StatusCreated).JSON(list)
}

func (h *ChecklistHandler) ListLists(c *fiber.Ctx) error {
	userID, err := ownership.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	lists, err := h.service.GetLists(userID)
	if err != nil {
		return h.mapError(c, err, "Failed to fetch lists")
	}
	return c.JSON(lists)
}

func (h *ChecklistHandler) RenameList(c *fiber.Ctx) error {
	userID, err := ownership.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	listID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid list ID")
	}

	var req RenameRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	list, err := h.service.RenameList(userID, listID, req)
	if err != nil {
		return h.mapError(c, err, "Failed to rename list")
	}
	return c.JSON(list)
}

func (h *ChecklistHandler) DeleteList(c *fiber.Ctx) error {
	userID, err := ownership.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	listID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid list ID")
	}

	if err := h.service.DeleteList(userID, listID); err != nil {
		return h.mapError(c, err, "Failed to delete list")
	}
	return c.JSON(dto.MessageResponse{Message: "List deleted successfully"})
}

func (h *ChecklistHandler) CreateTopic(c *fiber.Ctx) error {
	userID, err := ownership.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req CreateTopicRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	topic, err := h.service.CreateTopic(userID, req)
	if err != nil {
		return h.mapError(c, err, "Failed to create topic")
	}
	return c.Status(fiber.StatusCreated).JSON(topic)
}

func (h *ChecklistHandler) ListTopics(c *fiber.Ctx) error {
	userID, err := ownership.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	listID, err := uuid.Parse(c.Query("list_id"))
	if err != nil {
		return badRequest(c, "Invalid list ID")
	}

	topics, err := h.service.GetTopics(userID, listID)
	if err != nil {
		return h.mapError(c, err, "Failed to fetch topics")
	}
	return c.JSON(topics)
}

func (h *ChecklistHandler) RenameTopic(c *fiber.Ctx) error {
	userID, err := ownership.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	topicID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid topic ID")
	}

	var req RenameRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	topic, err := h.service.RenameTopic(userID, topicID, req)
	if err != nil {
		return h.mapError(c, err, "Failed to rename topic")
	}
	return c.JSON(topic)
}

func (h *ChecklistHandler) CheckTopic(c *fiber.Ctx) error {
	userID, err := ownership.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	topicID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid topic ID")
	}

	var req CheckTopicRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	topic, err := h.service.CheckTopic(userID, topicID, req.Checked)
	if err != nil {
		return h.mapError(c, err, "Failed to update topic")
	}
	return c.JSON(topic)
}

func (h *ChecklistHandler) DeleteTopic(c *fiber.Ctx) error {
	userID, err := ownership.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	topicID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid topic ID")
	}

	if err := h.service.DeleteTopic(userID, topicID); err != nil {
		return h.mapError(c, err, "Failed to delete topic")
	}
	return c.JSON(dto.MessageResponse{Message: "Topic deleted successfully"})
}

func (h *ChecklistHandler) mapError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, ErrInvalidName):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, ErrDuplicateListName), errors.Is(err, ErrDuplicateTopicName):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, ErrListNotFound), errors.Is(err, ErrTopicNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, ownership.ErrAccountNotFound):
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
