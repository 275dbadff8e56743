package settings

import (
	"database/sql"
	"log"

	"github.com/CalvinOheneba/Feeding/app/database"
	"github.com/CalvinOheneba/Feeding/app/models"
	"github.com/CalvinOheneba/Feeding/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

// Backup is the full persisted state as keyed collections. The keys and
// entity shapes match the browser-storage layout of the original
// deployment, so a dump taken there restores here unchanged.
type Backup struct {
	Users       []*models.User    `json:"users"`
	Stations    []*models.Station `json:"stations"`
	Students    []*models.Student `json:"students"`
	Payments    []*models.Payment `json:"payments"`
	CurrentUser *models.User      `json:"currentUser"`
}

func BackupAPI(c *fiber.Ctx, db *sql.DB) error {
	users, err := database.GetAllUsers(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch users")
	}
	stations, err := database.GetAllStations(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch stations")
	}
	students, err := database.GetAllStudents(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}
	payments, err := database.GetAllPayments(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payments")
	}

	return c.JSON(Backup{
		Users:       users,
		Stations:    stations,
		Students:    students,
		Payments:    payments,
		CurrentUser: auth.CurrentUser(c),
	})
}

// RestoreAPI loads a backup blob. Each row is restored independently and
// best effort: a failed row is logged and skipped, the rest still land.
func RestoreAPI(c *fiber.Ctx, db *sql.DB) error {
	var backup Backup
	if err := c.BodyParser(&backup); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid backup payload"})
	}

	restored, failed := 0, 0
	for _, station := range backup.Stations {
		if err := database.RestoreStation(db, station); err != nil {
			log.Printf("Failed to restore station %s: %v", station.ID, err)
			failed++
			continue
		}
		restored++
	}
	for _, user := range backup.Users {
		if err := database.RestoreUser(db, user); err != nil {
			log.Printf("Failed to restore user %s: %v", user.ID, err)
			failed++
			continue
		}
		restored++
	}
	for _, student := range backup.Students {
		if err := database.RestoreStudent(db, student); err != nil {
			log.Printf("Failed to restore student %s: %v", student.ID, err)
			failed++
			continue
		}
		restored++
	}
	for _, payment := range backup.Payments {
		if err := database.RestorePayment(db, payment); err != nil {
			log.Printf("Failed to restore payment %s: %v", payment.ID, err)
			failed++
			continue
		}
		restored++
	}

	return c.JSON(fiber.Map{"restored": restored, "failed": failed})
}
