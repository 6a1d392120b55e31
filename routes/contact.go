package routes

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"ngoserver/mail"
	"ngoserver/models"
	"ngoserver/services"
)

type ContactHandler struct {
	service  *services.ContactService
	notifier *mail.Notifier
}

func NewContactHandler(service *services.ContactService, notifier *mail.Notifier) *ContactHandler {
	return &ContactHandler{service: service, notifier: notifier}
}

// Create persists the submission and hands the notification to the mail
// queue. The User-Mail-Sent header reports whether the notification was
// accepted; delivery never changes the response status.
func (h *ContactHandler) Create(c *fiber.Ctx) error {
	contact := new(models.Contact)
	if err := c.BodyParser(contact); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if err := validate.Struct(contact); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name, email, phone number and message cannot be empty.",
		})
	}

	if err := h.service.Create(contact); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create contact",
		})
	}

	queued := h.notifier.Enqueue(contact.Name, contact.Email)
	c.Set("User-Mail-Sent", strconv.FormatBool(queued))

	return c.Status(fiber.StatusCreated).JSON(contact)
}

func (h *ContactHandler) List(c *fiber.Ctx) error {
	contacts, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get contacts",
		})
	}
	return c.JSON(contacts)
}
