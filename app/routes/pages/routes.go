// Package pages maps a role to its reachable navigation pages. The page
// set is fixed per role; selection between pages is a client concern.
package pages

import (
	"fmt"

	"github.com/CalvinOheneba/Feeding/app/models"
	"github.com/CalvinOheneba/Feeding/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

// InitialPage is where every session starts after login.
const InitialPage = "dashboard"

var (
	adminPages   = []string{"dashboard", "stations", "teachers", "students", "reports"}
	teacherPages = []string{"dashboard", "payments", "reports"}
)

// PagesForRole returns the page keys reachable by a role. An unknown
// role is a hard error with no fallback view.
func PagesForRole(role models.Role) ([]string, error) {
	switch role {
	case models.RoleAdmin:
		return adminPages, nil
	case models.RoleTeacher:
		return teacherPages, nil
	default:
		return nil, fmt.Errorf("unknown user role %q", role)
	}
}

// SetupPagesRoutes sets up the navigation route
func SetupPagesRoutes(app *fiber.App) {
	api := app.Group("/api/pages")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		user := auth.CurrentUser(c)
		reachable, err := PagesForRole(user.Role)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{
			"initial": InitialPage,
			"pages":   reachable,
		})
	})
}
