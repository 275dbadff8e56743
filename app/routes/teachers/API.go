package teachers

import (
	"database/sql"

	"github.com/CalvinOheneba/Feeding/app/database"
	"github.com/CalvinOheneba/Feeding/app/models"
	"github.com/CalvinOheneba/Feeding/app/routes/auth"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type userRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Role      string `json:"role" validate:"required,oneof=ADMIN TEACHER"`
	StationID string `json:"stationId" validate:"omitempty,uuid"`
	Password  string `json:"password" validate:"omitempty,min=8"`
}

func GetUsersAPI(c *fiber.Ctx, db *sql.DB) error {
	users, err := database.GetAllUsers(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch users")
	}
	return c.JSON(fiber.Map{"users": users})
}

func CreateUserAPI(c *fiber.Ctx, db *sql.DB) error {
	var req userRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Name, email and a valid role are required"})
	}

	user := &models.User{
		Name:  req.Name,
		Email: req.Email,
		Role:  models.Role(req.Role),
	}
	if req.StationID != "" {
		user.StationID = &req.StationID
	}
	if req.Password != "" {
		hashed, err := auth.HashPassword(req.Password)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
		}
		user.Password = hashed
	}

	if err := database.CreateUser(db, user); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create user")
	}

	return c.Status(201).JSON(fiber.Map{"user": user})
}

func UpdateUserAPI(c *fiber.Ctx, db *sql.DB) error {
	var req userRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Name, email and a valid role are required"})
	}

	role := models.Role(req.Role)
	upd := models.UserUpdate{
		Name:  &req.Name,
		Email: &req.Email,
		Role:  &role,
	}
	if req.StationID != "" {
		upd.StationID = &req.StationID
	} else {
		upd.ClearStation = true
	}
	if req.Password != "" {
		hashed, err := auth.HashPassword(req.Password)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
		}
		upd.Password = &hashed
	}

	userID := c.Params("id")
	if err := database.UpdateUser(db, userID, upd); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update user")
	}

	return c.JSON(fiber.Map{"message": "User updated"})
}

func DeleteUserAPI(c *fiber.Ctx, db *sql.DB) error {
	userID := c.Params("id")
	if userID == c.Locals("user_id").(string) {
		return c.Status(400).JSON(fiber.Map{"error": "Cannot delete your own account"})
	}

	if err := database.DeleteUser(db, userID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete user")
	}
	return c.JSON(fiber.Map{"message": "User deleted"})
}
