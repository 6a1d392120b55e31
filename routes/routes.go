package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"ngoserver/config"
	"ngoserver/db"
	"ngoserver/mail"
	"ngoserver/middleware"
	"ngoserver/models"
	"ngoserver/services"
)

var validate = validator.New()

// SetupRoutes wires every resource onto the app. News, categories and
// comments accept any authenticated principal (admin or user) for reads
// and writes alike, matching the observed role matrix of the reference
// system; users are admin-only.
func SetupRoutes(app *fiber.App, cfg *config.Config, notifier *mail.Notifier) {
	contactHandler := NewContactHandler(services.NewContactService(db.DB), notifier)
	newsHandler := NewNewsHandler(services.NewNewsService(db.DB))
	categoryHandler := NewCategoryHandler(services.NewCategoryService(db.DB))
	commentHandler := NewCommentHandler(services.NewCommentService(db.DB))
	userHandler := NewUserHandler(services.NewUserService(db.DB))

	authenticated := middleware.Protected(cfg.JWT.Secret, models.RoleAdmin, models.RoleUser)
	adminOnly := middleware.Protected(cfg.JWT.Secret, models.RoleAdmin)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Post("/upload", authenticated, uploadImage)

	contacts := app.Group("/contacts")
	contacts.Post("/", contactHandler.Create)
	if cfg.Contacts.ListRequireAdmin {
		contacts.Get("/", adminOnly, contactHandler.List)
	} else {
		contacts.Get("/", contactHandler.List)
	}

	news := app.Group("/news", authenticated)
	news.Post("/", newsHandler.Create)
	news.Get("/", newsHandler.List)
	news.Get("/:id", newsHandler.Get)
	news.Put("/:id", newsHandler.Update)
	news.Delete("/:id", newsHandler.Delete)

	categories := app.Group("/categories", authenticated)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.Get)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	comments := app.Group("/comments", authenticated)
	comments.Post("/", commentHandler.Create)
	comments.Get("/", commentHandler.List)
	comments.Delete("/:id", commentHandler.Delete)

	users := app.Group("/users", adminOnly)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.Get)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
}
