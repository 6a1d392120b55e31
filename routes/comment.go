package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"ngoserver/models"
	"ngoserver/services"
)

type CommentHandler struct {
	service *services.CommentService
}

func NewCommentHandler(service *services.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

func (h *CommentHandler) Create(c *fiber.Ctx) error {
	req := new(models.CommentRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "User and news references are required",
		})
	}

	comment, err := h.service.Create(req)
	if errors.Is(err, services.ErrUserNotFound) || errors.Is(err, services.ErrNewsNotFound) {
		return c.Status(fiber.StatusNotFound).Send(nil)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create comment",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

func (h *CommentHandler) List(c *fiber.Ctx) error {
	comments, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get comments",
		})
	}
	return c.JSON(comments)
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusNotFound).Send(nil)
	}

	err = h.service.Delete(uint(id))
	if errors.Is(err, services.ErrCommentNotFound) {
		return c.Status(fiber.StatusNotFound).Send(nil)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete comment",
		})
	}
	return c.Status(fiber.StatusOK).Send(nil)
}
