// Package ledger holds the payment derivations behind the dashboards.
// Every function is a pure scan over in-memory snapshots of the students
// and payments collections; nothing is cached between calls, the dataset
// is small enough to recompute on every read.
package ledger

import (
	"time"

	"github.com/CalvinOheneba/Feeding/app/models"
	"github.com/google/uuid"
)

// Record applies the ledger upsert rule to a snapshot and returns the
// updated slice. An existing record for the (student, date) pair is
// overwritten in place and keeps its id; otherwise a new record with a
// fresh id is appended. An empty acting user makes the call a silent
// no-op. The store-level upsert in app/database follows the same rule.
func Record(payments []*models.Payment, studentID, date string, status models.PaymentStatus, actingUserID string, now time.Time) []*models.Payment {
	if actingUserID == "" {
		return payments
	}

	if existing := PaymentFor(payments, studentID, date); existing != nil {
		existing.Status = status
		existing.RecordedBy = actingUserID
		existing.RecordedAt = now
		return payments
	}

	return append(payments, &models.Payment{
		ID:         uuid.New().String(),
		StudentID:  studentID,
		Date:       date,
		Status:     status,
		RecordedBy: actingUserID,
		RecordedAt: now,
	})
}

// PaymentFor returns the recorded payment for one (student, date) pair,
// or nil when none exists. Absence means the student has not paid.
func PaymentFor(payments []*models.Payment, studentID, date string) *models.Payment {
	for _, p := range payments {
		if p.StudentID == studentID && p.Date == date {
			return p
		}
	}
	return nil
}

// StatusFor is PaymentFor collapsed to a status, defaulting to NotPaid.
func StatusFor(payments []*models.Payment, studentID, date string) models.PaymentStatus {
	if p := PaymentFor(payments, studentID, date); p != nil {
		return p.Status
	}
	return models.NotPaid
}

// PaidOnDate counts the station's students with an explicit Paid record
// for the given date. An empty stationID counts across all stations.
func PaidOnDate(students []*models.Student, payments []*models.Payment, stationID, date string) int {
	count := 0
	for _, s := range students {
		if stationID != "" && s.StationID != stationID {
			continue
		}
		if p := PaymentFor(payments, s.ID, date); p != nil && p.Status == models.Paid {
			count++
		}
	}
	return count
}

// UnpaidStudents returns the station's students without a Paid record for
// the date. A student with no record at all counts as unpaid, the same as
// one with an explicit NotPaid record. An empty stationID spans all
// stations, matching PaidOnDate.
func UnpaidStudents(students []*models.Student, payments []*models.Payment, stationID, date string) []*models.Student {
	paid := make(map[string]bool)
	for _, p := range payments {
		if p.Date == date && p.Status == models.Paid {
			paid[p.StudentID] = true
		}
	}

	var unpaid []*models.Student
	for _, s := range students {
		if stationID != "" && s.StationID != stationID {
			continue
		}
		if !paid[s.ID] {
			unpaid = append(unpaid, s)
		}
	}
	return unpaid
}

// CollectionAmount converts a paid-student count into currency collected.
func CollectionAmount(paidCount int, unitFee float64) float64 {
	return float64(paidCount) * unitFee
}

// StationSummaries computes the per-station collection aggregate for one
// date, in the order the stations slice was given.
func StationSummaries(stations []*models.Station, students []*models.Student, payments []*models.Payment, date string, unitFee float64) []models.StationSummary {
	summaries := make([]models.StationSummary, 0, len(stations))
	for _, station := range stations {
		total := 0
		for _, s := range students {
			if s.StationID == station.ID {
				total++
			}
		}
		paid := PaidOnDate(students, payments, station.ID, date)
		summaries = append(summaries, models.StationSummary{
			StationID:       station.ID,
			StationName:     station.Name,
			PaidCount:       paid,
			TotalStudents:   total,
			TotalCollection: CollectionAmount(paid, unitFee),
		})
	}
	return summaries
}
