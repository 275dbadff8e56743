package models

import "time"

// Payment records the fare status of one student for one calendar day.
// There is at most one record per (studentId, date) pair; re-recording a
// status overwrites the existing record in place, keeping its id. Absence
// of a record for a day means the student has not paid.
type Payment struct {
	ID         string        `json:"id"`
	StudentID  string        `json:"studentId"`
	Date       string        `json:"date"` // YYYY-MM-DD
	Status     PaymentStatus `json:"status"`
	RecordedBy string        `json:"recordedBy"`
	RecordedAt time.Time     `json:"recordedAt"`
}

// DateLayout is the calendar-day format used throughout the ledger.
const DateLayout = "2006-01-02"

// Today returns the current calendar day in ledger format.
func Today() string {
	return time.Now().Format(DateLayout)
}
