package database

import (
	"database/sql"

	"github.com/CalvinOheneba/Feeding/app/models"
	"github.com/google/uuid"
)

func GetAllStudents(db *sql.DB) ([]*models.Student, error) {
	return queryStudents(db, `SELECT id, full_name, station_id, created_at, updated_at
							  FROM students ORDER BY full_name`)
}

func GetStudentsByStation(db *sql.DB, stationID string) ([]*models.Student, error) {
	return queryStudents(db, `SELECT id, full_name, station_id, created_at, updated_at
							  FROM students WHERE station_id = $1 ORDER BY full_name`, stationID)
}

func queryStudents(db *sql.DB, query string, args ...interface{}) ([]*models.Student, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student := &models.Student{}
		if err := rows.Scan(
			&student.ID, &student.FullName, &student.StationID,
			&student.CreatedAt, &student.UpdatedAt,
		); err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

func GetStudentByID(db *sql.DB, studentID string) (*models.Student, error) {
	student := &models.Student{}
	query := `SELECT id, full_name, station_id, created_at, updated_at FROM students WHERE id = $1`

	err := db.QueryRow(query, studentID).Scan(
		&student.ID, &student.FullName, &student.StationID,
		&student.CreatedAt, &student.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return student, nil
}

func CreateStudent(db *sql.DB, student *models.Student) error {
	student.ID = uuid.New().String()
	query := `INSERT INTO students (id, full_name, station_id, created_at, updated_at)
			  VALUES ($1, $2, $3, NOW(), NOW())`
	_, err := db.Exec(query, student.ID, student.FullName, student.StationID)
	return err
}

func UpdateStudent(db *sql.DB, studentID string, upd models.StudentUpdate) error {
	if upd.FullName != nil && upd.StationID != nil {
		query := `UPDATE students SET full_name = $1, station_id = $2, updated_at = NOW() WHERE id = $3`
		_, err := db.Exec(query, *upd.FullName, *upd.StationID, studentID)
		return err
	}
	if upd.FullName != nil {
		query := `UPDATE students SET full_name = $1, updated_at = NOW() WHERE id = $2`
		_, err := db.Exec(query, *upd.FullName, studentID)
		return err
	}
	if upd.StationID != nil {
		query := `UPDATE students SET station_id = $1, updated_at = NOW() WHERE id = $2`
		_, err := db.Exec(query, *upd.StationID, studentID)
		return err
	}
	return nil
}

func DeleteStudent(db *sql.DB, studentID string) error {
	query := `DELETE FROM students WHERE id = $1`
	_, err := db.Exec(query, studentID)
	return err
}
