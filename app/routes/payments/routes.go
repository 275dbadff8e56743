package payments

import (
	"github.com/CalvinOheneba/Feeding/app/config"
	"github.com/CalvinOheneba/Feeding/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

// SetupPaymentsRoutes sets up the payment ledger routes
func SetupPaymentsRoutes(app *fiber.App) {
	api := app.Group("/api/payments")
	api.Use(auth.AuthMiddleware)

	api.Post("/", func(c *fiber.Ctx) error {
		return RecordPaymentAPI(c, config.GetDB())
	})

	api.Get("/day", func(c *fiber.Ctx) error {
		return DayStatusAPI(c, config.GetDB())
	})
}
