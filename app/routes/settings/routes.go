package settings

import (
	"github.com/CalvinOheneba/Feeding/app/config"
	"github.com/CalvinOheneba/Feeding/app/models"
	"github.com/CalvinOheneba/Feeding/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

// SetupSettingsRoutes sets up the backup/restore routes (admin only)
func SetupSettingsRoutes(app *fiber.App) {
	api := app.Group("/api/settings")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware(models.RoleAdmin))

	api.Get("/backup", func(c *fiber.Ctx) error {
		return BackupAPI(c, config.GetDB())
	})

	api.Post("/restore", func(c *fiber.Ctx) error {
		return RestoreAPI(c, config.GetDB())
	})
}
