package students

import (
	"github.com/CalvinOheneba/Feeding/app/config"
	"github.com/CalvinOheneba/Feeding/app/models"
	"github.com/CalvinOheneba/Feeding/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

// SetupStudentsRoutes sets up the students routes
func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetStudentsAPI(c, config.GetDB())
	})

	adminOnly := auth.RoleMiddleware(models.RoleAdmin)

	api.Post("/", adminOnly, func(c *fiber.Ctx) error {
		return CreateStudentAPI(c, config.GetDB())
	})

	api.Put("/:id", adminOnly, func(c *fiber.Ctx) error {
		return UpdateStudentAPI(c, config.GetDB())
	})

	api.Delete("/:id", adminOnly, func(c *fiber.Ctx) error {
		return DeleteStudentAPI(c, config.GetDB())
	})
}
