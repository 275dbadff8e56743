package teachers

import (
	"github.com/CalvinOheneba/Feeding/app/config"
	"github.com/CalvinOheneba/Feeding/app/models"
	"github.com/CalvinOheneba/Feeding/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

// SetupTeachersRoutes sets up the user-management routes (admin only)
func SetupTeachersRoutes(app *fiber.App) {
	api := app.Group("/api/teachers")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware(models.RoleAdmin))

	api.Get("/", func(c *fiber.Ctx) error {
		return GetUsersAPI(c, config.GetDB())
	})

	api.Post("/", func(c *fiber.Ctx) error {
		return CreateUserAPI(c, config.GetDB())
	})

	api.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateUserAPI(c, config.GetDB())
	})

	api.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteUserAPI(c, config.GetDB())
	})
}
