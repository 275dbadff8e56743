package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	if err := createUsersTable(db); err != nil {
		return err
	}
	if err := createStationsTable(db); err != nil {
		return err
	}
	if err := createStudentsTable(db); err != nil {
		return err
	}
	if err := createPaymentsTable(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createUsersTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL DEFAULT '',
			role VARCHAR(20) NOT NULL,
			station_id UUID,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to create users table: %v", err)
	}
	return err
}

func createStationsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS stations (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to create stations table: %v", err)
	}
	return err
}

func createStudentsTable(db *sql.DB) error {
	// station_id intentionally carries no foreign key: the station-delete
	// cascade is best effort and a student may briefly reference a station
	// that no longer exists.
	query := `
		CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY,
			full_name TEXT NOT NULL,
			station_id UUID NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_students_station ON students (station_id);
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to create students table: %v", err)
	}
	return err
}

func createPaymentsTable(db *sql.DB) error {
	// One row per (student_id, pay_date); recording again overwrites in place.
	query := `
		CREATE TABLE IF NOT EXISTS payments (
			id UUID PRIMARY KEY,
			student_id UUID NOT NULL,
			pay_date DATE NOT NULL,
			status VARCHAR(20) NOT NULL,
			recorded_by UUID NOT NULL,
			recorded_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (student_id, pay_date)
		);
		CREATE INDEX IF NOT EXISTS idx_payments_date ON payments (pay_date);
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to create payments table: %v", err)
	}
	return err
}
