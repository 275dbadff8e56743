package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/CalvinOheneba/Feeding/app/models"
	"github.com/google/uuid"
)

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, name, email, password, role, station_id, is_active, created_at, updated_at
			  FROM users WHERE email = $1`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.Role,
		&user.StationID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, name, email, password, role, station_id, is_active, created_at, updated_at
			  FROM users WHERE id = $1`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.Role,
		&user.StationID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetAllUsers(db *sql.DB) ([]*models.User, error) {
	query := `SELECT id, name, email, role, station_id, is_active, created_at, updated_at
			  FROM users ORDER BY name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(
			&user.ID, &user.Name, &user.Email, &user.Role,
			&user.StationID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// CreateUser inserts a new user and fills in its generated id.
func CreateUser(db *sql.DB, user *models.User) error {
	user.ID = uuid.New().String()
	query := `INSERT INTO users (id, name, email, password, role, station_id, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, true, NOW(), NOW())`
	_, err := db.Exec(query, user.ID, user.Name, user.Email, user.Password, user.Role, user.StationID)
	return err
}

// UpdateUser applies only the fields set on the update struct.
func UpdateUser(db *sql.DB, userID string, upd models.UserUpdate) error {
	sets := []string{}
	args := []interface{}{}
	argIndex := 1

	add := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.Email != nil {
		add("email", *upd.Email)
	}
	if upd.Role != nil {
		add("role", *upd.Role)
	}
	if upd.ClearStation {
		sets = append(sets, "station_id = NULL")
	} else if upd.StationID != nil {
		add("station_id", *upd.StationID)
	}
	if upd.Password != nil {
		add("password", *upd.Password)
	}
	if upd.IsActive != nil {
		add("is_active", *upd.IsActive)
	}

	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at = NOW()")
	query := "UPDATE users SET " + strings.Join(sets, ", ") + fmt.Sprintf(" WHERE id = $%d", argIndex)
	args = append(args, userID)

	_, err := db.Exec(query, args...)
	return err
}

func DeleteUser(db *sql.DB, userID string) error {
	query := `DELETE FROM users WHERE id = $1`
	_, err := db.Exec(query, userID)
	return err
}

func UpdateUserPassword(db *sql.DB, userID string, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, hashedPassword, userID)
	return err
}

// GetUsersByStation returns the users assigned to a station.
func GetUsersByStation(db *sql.DB, stationID string) ([]*models.User, error) {
	query := `SELECT id, name, email, role, station_id, is_active, created_at, updated_at
			  FROM users WHERE station_id = $1 ORDER BY name`

	rows, err := db.Query(query, stationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(
			&user.ID, &user.Name, &user.Email, &user.Role,
			&user.StationID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
