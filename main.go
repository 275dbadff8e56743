package main

import (
	"log"

	"github.com/CalvinOheneba/Feeding/app/config"
	"github.com/CalvinOheneba/Feeding/app/database"
	"github.com/CalvinOheneba/Feeding/app/routes/auth"
	"github.com/CalvinOheneba/Feeding/app/routes/dashboard"
	"github.com/CalvinOheneba/Feeding/app/routes/pages"
	"github.com/CalvinOheneba/Feeding/app/routes/payments"
	"github.com/CalvinOheneba/Feeding/app/routes/reports"
	"github.com/CalvinOheneba/Feeding/app/routes/settings"
	"github.com/CalvinOheneba/Feeding/app/routes/stations"
	"github.com/CalvinOheneba/Feeding/app/routes/students"
	"github.com/CalvinOheneba/Feeding/app/routes/teachers"
	"github.com/CalvinOheneba/Feeding/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// customErrorHandler renders every error as the JSON shape the API
// clients expect.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Initialize configuration and database
	config.Load()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Start background scheduler
	services.StartScheduler(config.GetDB())

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Routes
	authenticator := auth.NewAuthenticator(config.GetDB(), config.AppConfig.AuthMode)
	auth.SetupAuthRoutes(app, authenticator)
	dashboard.SetupDashboardRoutes(app)
	stations.SetupStationsRoutes(app)
	students.SetupStudentsRoutes(app)
	teachers.SetupTeachersRoutes(app)
	payments.SetupPaymentsRoutes(app)
	reports.SetupReportsRoutes(app)
	pages.SetupPagesRoutes(app)
	settings.SetupSettingsRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	// Start server
	addr := ":" + config.AppConfig.Port
	log.Println("Server starting on", addr)
	log.Fatal(app.Listen(addr))
}
