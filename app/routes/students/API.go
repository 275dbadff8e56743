package students

import (
	"database/sql"

	"github.com/CalvinOheneba/Feeding/app/database"
	"github.com/CalvinOheneba/Feeding/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// StudentResponse is a student with its station name resolved for display.
type StudentResponse struct {
	*models.Student
	StationName string `json:"station_name"`
}

func GetStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	stationID := c.Query("station")

	var (
		students []*models.Student
		err      error
	)
	if stationID != "" {
		students, err = database.GetStudentsByStation(db, stationID)
	} else {
		students, err = database.GetAllStudents(db)
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}

	stations, err := database.GetAllStations(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch stations")
	}
	stationNames := make(map[string]string, len(stations))
	for _, s := range stations {
		stationNames[s.ID] = s.Name
	}

	out := make([]StudentResponse, 0, len(students))
	for _, student := range students {
		name, ok := stationNames[student.StationID]
		if !ok {
			name = "N/A"
		}
		out = append(out, StudentResponse{Student: student, StationName: name})
	}

	return c.JSON(fiber.Map{"students": out})
}

func CreateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	type CreateStudentRequest struct {
		FullName  string `json:"fullName" validate:"required"`
		StationID string `json:"stationId" validate:"required,uuid"`
	}

	var req CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Full name and station are required"})
	}

	student := &models.Student{FullName: req.FullName, StationID: req.StationID}
	if err := database.CreateStudent(db, student); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create student")
	}

	return c.Status(201).JSON(fiber.Map{"student": student})
}

func UpdateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	type UpdateStudentRequest struct {
		FullName  string `json:"fullName" validate:"required"`
		StationID string `json:"stationId" validate:"required,uuid"`
	}

	var req UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Full name and station are required"})
	}

	studentID := c.Params("id")
	upd := models.StudentUpdate{FullName: &req.FullName, StationID: &req.StationID}
	if err := database.UpdateStudent(db, studentID, upd); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update student")
	}

	return c.JSON(fiber.Map{"message": "Student updated"})
}

func DeleteStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Params("id")
	if err := database.DeleteStudent(db, studentID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete student")
	}
	return c.JSON(fiber.Map{"message": "Student deleted"})
}
