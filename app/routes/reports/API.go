package reports

import (
	"bytes"
	"database/sql"
	"fmt"
	"time"

	"github.com/CalvinOheneba/Feeding/app/config"
	"github.com/CalvinOheneba/Feeding/app/database"
	"github.com/CalvinOheneba/Feeding/app/models"
	"github.com/CalvinOheneba/Feeding/app/reports"
	"github.com/CalvinOheneba/Feeding/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

// buildRows assembles the report for the caller. Admins see the
// school-wide report honoring both filters; teachers are pinned to their
// own station and get the student-name sort.
func buildRows(c *fiber.Ctx, db *sql.DB) ([]models.ReportRow, string, error) {
	dateFilter := c.Query("date")
	if dateFilter != "" {
		if _, err := time.Parse(models.DateLayout, dateFilter); err != nil {
			return nil, "", fiber.NewError(fiber.StatusBadRequest, "Date must be YYYY-MM-DD")
		}
	}

	payments, err := database.GetAllPayments(db)
	if err != nil {
		return nil, "", fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payments")
	}
	students, err := database.GetAllStudents(db)
	if err != nil {
		return nil, "", fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}

	user := auth.CurrentUser(c)
	unitFee := config.UnitFee()

	if user.Role == models.RoleTeacher {
		if user.StationID == nil {
			return nil, dateFilter, nil
		}
		station, err := database.GetStationByID(db, *user.StationID)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil, dateFilter, nil
			}
			return nil, "", fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch station")
		}
		return reports.BuildStationReport(payments, students, station, dateFilter, unitFee), dateFilter, nil
	}

	stations, err := database.GetAllStations(db)
	if err != nil {
		return nil, "", fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch stations")
	}
	rows := reports.BuildReport(payments, students, stations, dateFilter, c.Query("station"), unitFee)
	return rows, dateFilter, nil
}

func exportName(dateFilter string) string {
	if dateFilter == "" {
		dateFilter = "all"
	}
	return fmt.Sprintf("payment_report_%s", dateFilter)
}

func exportTitle(dateFilter string) string {
	if dateFilter == "" {
		return "Payment Report"
	}
	return fmt.Sprintf("Payment Report for %s", dateFilter)
}

func GetReportAPI(c *fiber.Ctx, db *sql.DB) error {
	rows, _, err := buildRows(c, db)
	if err != nil {
		return err
	}
	if rows == nil {
		rows = []models.ReportRow{}
	}
	return c.JSON(fiber.Map{"rows": rows})
}

func ExportExcelAPI(c *fiber.Ctx, db *sql.DB) error {
	rows, dateFilter, err := buildRows(c, db)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := reports.WriteExcel(rows, &buf); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to build workbook")
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.xlsx"`, exportName(dateFilter)))
	return c.Send(buf.Bytes())
}

func ExportPDFAPI(c *fiber.Ctx, db *sql.DB) error {
	rows, dateFilter, err := buildRows(c, db)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := reports.WritePDF(rows, exportTitle(dateFilter), &buf); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to build document")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.pdf"`, exportName(dateFilter)))
	return c.Send(buf.Bytes())
}
