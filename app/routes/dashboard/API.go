package dashboard

import (
	"database/sql"

	"github.com/CalvinOheneba/Feeding/app/config"
	"github.com/CalvinOheneba/Feeding/app/database"
	"github.com/CalvinOheneba/Feeding/app/ledger"
	"github.com/CalvinOheneba/Feeding/app/models"
	"github.com/CalvinOheneba/Feeding/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

// AdminDashboardAPI returns today's headline figures and the per-station
// collection summary. Everything is recomputed from a fresh snapshot on
// each call; nothing is cached.
func AdminDashboardAPI(c *fiber.Ctx, db *sql.DB) error {
	stations, err := database.GetAllStations(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch stations")
	}
	students, err := database.GetAllStudents(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}
	today := models.Today()
	payments, err := database.GetPaymentsByDate(db, today)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payments")
	}

	unitFee := config.UnitFee()
	paidToday := ledger.PaidOnDate(students, payments, "", today)

	stats := models.DashboardStats{
		TotalStations:    len(stations),
		TotalStudents:    len(students),
		PaidToday:        paidToday,
		CollectionToday:  ledger.CollectionAmount(paidToday, unitFee),
		StationSummaries: ledger.StationSummaries(stations, students, payments, today, unitFee),
	}

	return c.JSON(fiber.Map{"date": today, "stats": stats})
}

// TeacherDashboardAPI returns the caller's station figures: assigned
// student count, amount collected today and the unpaid list.
func TeacherDashboardAPI(c *fiber.Ctx, db *sql.DB) error {
	user := auth.CurrentUser(c)
	if user.StationID == nil {
		return c.JSON(fiber.Map{
			"station":           nil,
			"assigned_students": 0,
			"paid_today":        0,
			"collection_today":  0.0,
			"unpaid_students":   []interface{}{},
		})
	}

	station, err := database.GetStationByID(db, *user.StationID)
	if err != nil && err != sql.ErrNoRows {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch station")
	}

	students, err := database.GetStudentsByStation(db, *user.StationID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}
	today := models.Today()
	payments, err := database.GetPaymentsByDate(db, today)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payments")
	}

	paidToday := ledger.PaidOnDate(students, payments, *user.StationID, today)
	unpaid := ledger.UnpaidStudents(students, payments, *user.StationID, today)
	if unpaid == nil {
		unpaid = []*models.Student{}
	}

	return c.JSON(fiber.Map{
		"station":           station,
		"assigned_students": len(students),
		"paid_today":        paidToday,
		"collection_today":  ledger.CollectionAmount(paidToday, config.UnitFee()),
		"unpaid_students":   unpaid,
	})
}
