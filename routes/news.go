package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"ngoserver/models"
	"ngoserver/services"
)

type NewsHandler struct {
	service *services.NewsService
}

func NewNewsHandler(service *services.NewsService) *NewsHandler {
	return &NewsHandler{service: service}
}

func (h *NewsHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusNotFound).Send(nil)
	}

	news, err := h.service.GetByID(uint(id))
	if errors.Is(err, services.ErrNewsNotFound) {
		return c.Status(fiber.StatusNotFound).Send(nil)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get news item",
		})
	}
	return c.JSON(news)
}

func (h *NewsHandler) List(c *fiber.Ctx) error {
	news, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get news items",
		})
	}
	return c.JSON(news)
}

func (h *NewsHandler) Create(c *fiber.Ctx) error {
	req := new(models.NewsRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name field is required",
		})
	}

	news, err := h.service.Create(req)
	if errors.Is(err, services.ErrCategoryNotFound) {
		return c.Status(fiber.StatusNotFound).Send(nil)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create news item",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(news)
}

func (h *NewsHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusNotFound).Send(nil)
	}

	req := new(models.NewsRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name field is required",
		})
	}

	news, err := h.service.Update(uint(id), req)
	if errors.Is(err, services.ErrNewsNotFound) || errors.Is(err, services.ErrCategoryNotFound) {
		return c.Status(fiber.StatusNotFound).Send(nil)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update news item",
		})
	}
	return c.JSON(news)
}

func (h *NewsHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusNotFound).Send(nil)
	}

	err = h.service.Delete(uint(id))
	if errors.Is(err, services.ErrNewsNotFound) {
		return c.Status(fiber.StatusNotFound).Send(nil)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete news item",
		})
	}
	return c.Status(fiber.StatusOK).Send(nil)
}
