package dashboard

import (
	"github.com/CalvinOheneba/Feeding/app/config"
	"github.com/CalvinOheneba/Feeding/app/models"
	"github.com/CalvinOheneba/Feeding/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

// SetupDashboardRoutes sets up the dashboard routes
func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)

	api.Get("/admin", auth.RoleMiddleware(models.RoleAdmin), func(c *fiber.Ctx) error {
		return AdminDashboardAPI(c, config.GetDB())
	})

	api.Get("/teacher", auth.RoleMiddleware(models.RoleTeacher), func(c *fiber.Ctx) error {
		return TeacherDashboardAPI(c, config.GetDB())
	})
}
