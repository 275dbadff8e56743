package stations

import (
	"database/sql"
	"time"

	"github.com/CalvinOheneba/Feeding/app/database"
	"github.com/CalvinOheneba/Feeding/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// StationResponse is a station plus its teacher in charge, if any.
type StationResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	TeacherID   string    `json:"teacher_id,omitempty"`
	TeacherName string    `json:"teacher_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GetStationsAPI returns all stations with their teacher in charge. When
// several teachers reference the same station the first by name wins; the
// store does not enforce a single teacher per station.
func GetStationsAPI(c *fiber.Ctx, db *sql.DB) error {
	stations, err := database.GetAllStations(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch stations")
	}

	users, err := database.GetAllUsers(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch users")
	}

	out := make([]StationResponse, 0, len(stations))
	for _, station := range stations {
		resp := StationResponse{
			ID:        station.ID,
			Name:      station.Name,
			CreatedAt: station.CreatedAt,
			UpdatedAt: station.UpdatedAt,
		}
		for _, user := range users {
			if user.Role == models.RoleTeacher && user.StationID != nil && *user.StationID == station.ID {
				resp.TeacherID = user.ID
				resp.TeacherName = user.Name
				break
			}
		}
		out = append(out, resp)
	}

	return c.JSON(fiber.Map{"stations": out})
}

func CreateStationAPI(c *fiber.Ctx, db *sql.DB) error {
	type CreateStationRequest struct {
		Name string `json:"name" validate:"required"`
	}

	var req CreateStationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Station name is required"})
	}

	station := &models.Station{Name: req.Name}
	if err := database.CreateStation(db, station); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create station")
	}

	return c.Status(201).JSON(fiber.Map{"station": station})
}

func UpdateStationAPI(c *fiber.Ctx, db *sql.DB) error {
	type UpdateStationRequest struct {
		Name string `json:"name" validate:"required"`
	}

	var req UpdateStationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Station name is required"})
	}

	stationID := c.Params("id")
	if err := database.UpdateStation(db, stationID, models.StationUpdate{Name: &req.Name}); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update station")
	}

	return c.JSON(fiber.Map{"message": "Station updated"})
}

// DeleteStationAPI removes a station along with its students and clears
// the assignment on any teacher. The cascade is best effort; the client
// re-fetches afterwards and accepts whatever state the store reports.
func DeleteStationAPI(c *fiber.Ctx, db *sql.DB) error {
	stationID := c.Params("id")
	if err := database.DeleteStationCascade(db, stationID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete station")
	}
	return c.JSON(fiber.Map{"message": "Station deleted"})
}
