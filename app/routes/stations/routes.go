package stations

import (
	"github.com/CalvinOheneba/Feeding/app/config"
	"github.com/CalvinOheneba/Feeding/app/models"
	"github.com/CalvinOheneba/Feeding/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

// SetupStationsRoutes sets up the stations routes
func SetupStationsRoutes(app *fiber.App) {
	api := app.Group("/api/stations")
	api.Use(auth.AuthMiddleware)

	// Any authenticated user may list stations; mutations are admin only.
	api.Get("/", func(c *fiber.Ctx) error {
		return GetStationsAPI(c, config.GetDB())
	})

	adminOnly := auth.RoleMiddleware(models.RoleAdmin)

	api.Post("/", adminOnly, func(c *fiber.Ctx) error {
		return CreateStationAPI(c, config.GetDB())
	})

	api.Put("/:id", adminOnly, func(c *fiber.Ctx) error {
		return UpdateStationAPI(c, config.GetDB())
	})

	api.Delete("/:id", adminOnly, func(c *fiber.Ctx) error {
		return DeleteStationAPI(c, config.GetDB())
	})
}
