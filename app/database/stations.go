package database

import (
	"database/sql"
	"log"

	"github.com/CalvinOheneba/Feeding/app/models"
	"github.com/google/uuid"
)

func GetAllStations(db *sql.DB) ([]*models.Station, error) {
	query := `SELECT id, name, created_at, updated_at FROM stations ORDER BY name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stations []*models.Station
	for rows.Next() {
		station := &models.Station{}
		if err := rows.Scan(&station.ID, &station.Name, &station.CreatedAt, &station.UpdatedAt); err != nil {
			return nil, err
		}
		stations = append(stations, station)
	}
	return stations, rows.Err()
}

func GetStationByID(db *sql.DB, stationID string) (*models.Station, error) {
	station := &models.Station{}
	query := `SELECT id, name, created_at, updated_at FROM stations WHERE id = $1`

	err := db.QueryRow(query, stationID).Scan(
		&station.ID, &station.Name, &station.CreatedAt, &station.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return station, nil
}

func CreateStation(db *sql.DB, station *models.Station) error {
	station.ID = uuid.New().String()
	query := `INSERT INTO stations (id, name, created_at, updated_at) VALUES ($1, $2, NOW(), NOW())`
	_, err := db.Exec(query, station.ID, station.Name)
	return err
}

func UpdateStation(db *sql.DB, stationID string, upd models.StationUpdate) error {
	if upd.Name == nil {
		return nil
	}
	query := `UPDATE stations SET name = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, *upd.Name, stationID)
	return err
}

// cascadeStore is the slice of the store the station cascade mutates.
// Each method maps to one independent statement; there is no transaction
// wrapping them.
type cascadeStore interface {
	DeleteStation(stationID string) error
	StudentsByStation(stationID string) ([]*models.Student, error)
	DeleteStudent(studentID string) error
	UsersByStation(stationID string) ([]*models.User, error)
	UnassignUser(userID string) error
}

// cascadeDelete deletes a station, then best-effort removes its students
// and clears the assignment on any user referencing it. Only the station
// delete itself can fail the call; dependent mutations that fail are
// logged and skipped, so a partial cascade leaves orphans behind and the
// caller is expected to re-read the store and accept what it reports.
func cascadeDelete(store cascadeStore, stationID string) error {
	if err := store.DeleteStation(stationID); err != nil {
		return err
	}

	students, err := store.StudentsByStation(stationID)
	if err != nil {
		log.Printf("Station %s deleted but listing its students failed: %v", stationID, err)
		students = nil
	}
	for _, student := range students {
		if err := store.DeleteStudent(student.ID); err != nil {
			log.Printf("Failed to delete student %s of station %s: %v", student.ID, stationID, err)
		}
	}

	users, err := store.UsersByStation(stationID)
	if err != nil {
		log.Printf("Station %s deleted but listing its users failed: %v", stationID, err)
		users = nil
	}
	for _, user := range users {
		if err := store.UnassignUser(user.ID); err != nil {
			log.Printf("Failed to unassign user %s from station %s: %v", user.ID, stationID, err)
		}
	}

	return nil
}

type sqlCascadeStore struct {
	db *sql.DB
}

func (s sqlCascadeStore) DeleteStation(stationID string) error {
	_, err := s.db.Exec(`DELETE FROM stations WHERE id = $1`, stationID)
	return err
}

func (s sqlCascadeStore) StudentsByStation(stationID string) ([]*models.Student, error) {
	return GetStudentsByStation(s.db, stationID)
}

func (s sqlCascadeStore) DeleteStudent(studentID string) error {
	_, err := s.db.Exec(`DELETE FROM students WHERE id = $1`, studentID)
	return err
}

func (s sqlCascadeStore) UsersByStation(stationID string) ([]*models.User, error) {
	return GetUsersByStation(s.db, stationID)
}

func (s sqlCascadeStore) UnassignUser(userID string) error {
	_, err := s.db.Exec(`UPDATE users SET station_id = NULL, updated_at = NOW() WHERE id = $1`, userID)
	return err
}

func DeleteStationCascade(db *sql.DB, stationID string) error {
	return cascadeDelete(sqlCascadeStore{db: db}, stationID)
}
