package database

import (
	"database/sql"
	"time"

	"github.com/CalvinOheneba/Feeding/app/models"
	"github.com/google/uuid"
)

// RecordPayment upserts the status for one (student, date) pair. An
// existing record is overwritten in place and keeps its id; only a first
// recording creates a new row. Returns the stored payment.
//
// The student id is deliberately not checked against the students table:
// the ledger accepts whatever key it is handed, and reports drop rows
// whose student no longer resolves.
func RecordPayment(db *sql.DB, studentID, date string, status models.PaymentStatus, recordedBy string) (*models.Payment, error) {
	payment := &models.Payment{
		StudentID:  studentID,
		Date:       date,
		Status:     status,
		RecordedBy: recordedBy,
	}

	query := `
		INSERT INTO payments (id, student_id, pay_date, status, recorded_by, recorded_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (student_id, pay_date) DO UPDATE
		SET status = EXCLUDED.status,
			recorded_by = EXCLUDED.recorded_by,
			recorded_at = EXCLUDED.recorded_at
		RETURNING id, recorded_at
	`
	err := db.QueryRow(query, uuid.New().String(), studentID, date, status, recordedBy).
		Scan(&payment.ID, &payment.RecordedAt)
	if err != nil {
		return nil, err
	}
	return payment, nil
}

func GetAllPayments(db *sql.DB) ([]*models.Payment, error) {
	return queryPayments(db, `SELECT id, student_id, pay_date, status, recorded_by, recorded_at
							  FROM payments ORDER BY pay_date, recorded_at`)
}

func GetPaymentsByDate(db *sql.DB, date string) ([]*models.Payment, error) {
	return queryPayments(db, `SELECT id, student_id, pay_date, status, recorded_by, recorded_at
							  FROM payments WHERE pay_date = $1 ORDER BY recorded_at`, date)
}

func queryPayments(db *sql.DB, query string, args ...interface{}) ([]*models.Payment, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		payment := &models.Payment{}
		var payDate time.Time
		if err := rows.Scan(
			&payment.ID, &payment.StudentID, &payDate,
			&payment.Status, &payment.RecordedBy, &payment.RecordedAt,
		); err != nil {
			return nil, err
		}
		payment.Date = payDate.Format(models.DateLayout)
		payments = append(payments, payment)
	}
	return payments, rows.Err()
}
