package reports

import (
	"github.com/CalvinOheneba/Feeding/app/config"
	"github.com/CalvinOheneba/Feeding/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

// SetupReportsRoutes sets up the payment report routes
func SetupReportsRoutes(app *fiber.App) {
	api := app.Group("/api/reports")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetReportAPI(c, config.GetDB())
	})

	api.Get("/export/xlsx", func(c *fiber.Ctx) error {
		return ExportExcelAPI(c, config.GetDB())
	})

	api.Get("/export/pdf", func(c *fiber.Ctx) error {
		return ExportPDFAPI(c, config.GetDB())
	})
}
