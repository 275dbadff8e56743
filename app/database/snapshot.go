package database

import (
	"database/sql"

	"github.com/CalvinOheneba/Feeding/app/models"
)

// Restore inserts preserve the ids carried in a backup blob so that a
// backup/restore cycle round-trips exactly. Existing rows with the same
// id are overwritten.

func RestoreUser(db *sql.DB, user *models.User) error {
	query := `
		INSERT INTO users (id, name, email, password, role, station_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, email = EXCLUDED.email, role = EXCLUDED.role,
			station_id = EXCLUDED.station_id, is_active = EXCLUDED.is_active, updated_at = NOW()
	`
	_, err := db.Exec(query, user.ID, user.Name, user.Email, user.Password, user.Role, user.StationID, user.IsActive)
	return err
}

func RestoreStation(db *sql.DB, station *models.Station) error {
	query := `
		INSERT INTO stations (id, name, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, updated_at = NOW()
	`
	_, err := db.Exec(query, station.ID, station.Name)
	return err
}

func RestoreStudent(db *sql.DB, student *models.Student) error {
	query := `
		INSERT INTO students (id, full_name, station_id, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE
		SET full_name = EXCLUDED.full_name, station_id = EXCLUDED.station_id, updated_at = NOW()
	`
	_, err := db.Exec(query, student.ID, student.FullName, student.StationID)
	return err
}

func RestorePayment(db *sql.DB, payment *models.Payment) error {
	query := `
		INSERT INTO payments (id, student_id, pay_date, status, recorded_by, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET student_id = EXCLUDED.student_id, pay_date = EXCLUDED.pay_date,
			status = EXCLUDED.status, recorded_by = EXCLUDED.recorded_by,
			recorded_at = EXCLUDED.recorded_at
	`
	_, err := db.Exec(query, payment.ID, payment.StudentID, payment.Date, payment.Status, payment.RecordedBy, payment.RecordedAt)
	return err
}
