// Package reports joins the payment ledger against students and stations
// into ordered report rows and feeds them to the export sinks.
package reports

import (
	"sort"

	"github.com/CalvinOheneba/Feeding/app/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// StationFilterAll selects every station in BuildReport.
const StationFilterAll = "all"

var collator = collate.New(language.English, collate.IgnoreCase)

// BuildReport produces the school-wide payment report. Each payment is
// resolved to its student and the student's station; a payment whose
// student or station no longer exists is dropped without comment. An
// empty dateFilter keeps all dates; StationFilterAll (or "") keeps all
// stations. Rows are ordered by station name, then student name.
//
// Note the report never backfills missing records: a student without a
// payment row for the filtered date produces no report row, even though
// the dashboard counts that student as unpaid.
func BuildReport(payments []*models.Payment, students []*models.Student, stations []*models.Station, dateFilter, stationFilter string, unitFee float64) []models.ReportRow {
	studentsByID := make(map[string]*models.Student, len(students))
	for _, s := range students {
		studentsByID[s.ID] = s
	}
	stationsByID := make(map[string]*models.Station, len(stations))
	for _, s := range stations {
		stationsByID[s.ID] = s
	}

	var rows []models.ReportRow
	for _, p := range payments {
		if dateFilter != "" && p.Date != dateFilter {
			continue
		}
		student, ok := studentsByID[p.StudentID]
		if !ok {
			continue
		}
		station, ok := stationsByID[student.StationID]
		if !ok {
			continue
		}
		if stationFilter != "" && stationFilter != StationFilterAll && student.StationID != stationFilter {
			continue
		}
		rows = append(rows, models.ReportRow{
			StudentName: student.FullName,
			StationName: station.Name,
			Date:        p.Date,
			Status:      models.StatusLabel(p.Status),
			Amount:      amountFor(p.Status, unitFee),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if c := collator.CompareString(rows[i].StationName, rows[j].StationName); c != 0 {
			return c < 0
		}
		return collator.CompareString(rows[i].StudentName, rows[j].StudentName) < 0
	})
	return rows
}

// BuildStationReport is the single-station teacher report: same join and
// date filter, sorted by student name only since the station is constant.
func BuildStationReport(payments []*models.Payment, students []*models.Student, station *models.Station, dateFilter string, unitFee float64) []models.ReportRow {
	if station == nil {
		return nil
	}

	rows := BuildReport(payments, students, []*models.Station{station}, dateFilter, station.ID, unitFee)
	sort.SliceStable(rows, func(i, j int) bool {
		return collator.CompareString(rows[i].StudentName, rows[j].StudentName) < 0
	})
	return rows
}

func amountFor(status models.PaymentStatus, unitFee float64) float64 {
	if status == models.Paid {
		return unitFee
	}
	return 0.00
}
