package payments

import (
	"database/sql"
	"time"

	"github.com/CalvinOheneba/Feeding/app/database"
	"github.com/CalvinOheneba/Feeding/app/ledger"
	"github.com/CalvinOheneba/Feeding/app/models"
	"github.com/CalvinOheneba/Feeding/app/routes/auth"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// RecordPaymentAPI upserts the status for one (student, date) pair. A
// request without an authenticated user is a silent no-op rather than an
// error. The student id is accepted as given; a payment for a student
// that was deleted later simply never shows up in reports.
func RecordPaymentAPI(c *fiber.Ctx, db *sql.DB) error {
	actingUser := auth.CurrentUser(c)
	if actingUser == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}

	type RecordPaymentRequest struct {
		StudentID string `json:"studentId" validate:"required"`
		Date      string `json:"date"`
		Status    string `json:"status" validate:"required,oneof=PAID NOT_PAID"`
	}

	var req RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Student and a valid status are required"})
	}

	if req.Date == "" {
		req.Date = models.Today()
	} else if _, err := time.Parse(models.DateLayout, req.Date); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Date must be YYYY-MM-DD"})
	}

	payment, err := database.RecordPayment(db, req.StudentID, req.Date, models.PaymentStatus(req.Status), actingUser.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record payment")
	}

	return c.JSON(fiber.Map{"payment": payment})
}

// DayStatusAPI returns the per-student status grid a teacher records
// against: every student of the station with the recorded status for the
// requested date, defaulting to NOT_PAID where no record exists.
func DayStatusAPI(c *fiber.Ctx, db *sql.DB) error {
	user := auth.CurrentUser(c)

	date := c.Query("date")
	if date == "" {
		date = models.Today()
	} else if _, err := time.Parse(models.DateLayout, date); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Date must be YYYY-MM-DD"})
	}

	// Teachers are pinned to their own station; admins may ask for any.
	stationID := c.Query("station")
	if user.Role == models.RoleTeacher {
		if user.StationID == nil {
			return c.JSON(fiber.Map{"date": date, "students": []interface{}{}})
		}
		stationID = *user.StationID
	}
	if stationID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Station is required"})
	}

	students, err := database.GetStudentsByStation(db, stationID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}
	dayPayments, err := database.GetPaymentsByDate(db, date)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payments")
	}

	type StudentStatus struct {
		StudentID string               `json:"studentId"`
		FullName  string               `json:"fullName"`
		Status    models.PaymentStatus `json:"status"`
	}

	grid := make([]StudentStatus, 0, len(students))
	for _, student := range students {
		grid = append(grid, StudentStatus{
			StudentID: student.ID,
			FullName:  student.FullName,
			Status:    ledger.StatusFor(dayPayments, student.ID, date),
		})
	}

	return c.JSON(fiber.Map{"date": date, "students": grid})
}
