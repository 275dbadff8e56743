package ledger

import (
	"testing"
	"time"

	"github.com/CalvinOheneba/Feeding/app/models"
)

func student(id, name, stationID string) *models.Student {
	return &models.Student{ID: id, FullName: name, StationID: stationID}
}

func payment(id, studentID, date string, status models.PaymentStatus) *models.Payment {
	return &models.Payment{ID: id, StudentID: studentID, Date: date, Status: status}
}

func TestPaymentFor(t *testing.T) {
	payments := []*models.Payment{
		payment("p1", "s1", "2024-01-10", models.Paid),
		payment("p2", "s1", "2024-01-11", models.NotPaid),
		payment("p3", "s2", "2024-01-10", models.NotPaid),
	}

	tests := []struct {
		name      string
		studentID string
		date      string
		wantID    string
	}{
		{"exact match", "s1", "2024-01-10", "p1"},
		{"same student other day", "s1", "2024-01-11", "p2"},
		{"other student same day", "s2", "2024-01-10", "p3"},
		{"no record", "s2", "2024-01-11", ""},
		{"unknown student", "s9", "2024-01-10", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PaymentFor(payments, tt.studentID, tt.date)
			if tt.wantID == "" {
				if got != nil {
					t.Errorf("expected nil, got %+v", got)
				}
				return
			}
			if got == nil || got.ID != tt.wantID {
				t.Errorf("expected payment %s, got %+v", tt.wantID, got)
			}
		})
	}
}

// Recording twice for the same (student, date) with differing statuses
// leaves exactly one record carrying the second status and the first id.
func TestRecord_LastWriteWins(t *testing.T) {
	t0 := time.Date(2024, 1, 10, 7, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)

	payments := Record(nil, "s1", "2024-01-10", models.Paid, "u1", t0)
	if len(payments) != 1 {
		t.Fatalf("expected 1 record, got %d", len(payments))
	}
	firstID := payments[0].ID

	payments = Record(payments, "s1", "2024-01-10", models.NotPaid, "u2", t1)
	if len(payments) != 1 {
		t.Fatalf("expected overwrite, got %d records", len(payments))
	}
	got := payments[0]
	if got.ID != firstID {
		t.Errorf("record id changed on overwrite: %s -> %s", firstID, got.ID)
	}
	if got.Status != models.NotPaid || got.RecordedBy != "u2" || !got.RecordedAt.Equal(t1) {
		t.Errorf("overwrite did not take: %+v", got)
	}
}

func TestRecord_IdempotentOnStatus(t *testing.T) {
	t0 := time.Date(2024, 1, 10, 7, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Minute)

	payments := Record(nil, "s1", "2024-01-10", models.Paid, "u1", t0)
	firstID := payments[0].ID

	payments = Record(payments, "s1", "2024-01-10", models.Paid, "u1", t1)
	if len(payments) != 1 {
		t.Fatalf("expected 1 record, got %d", len(payments))
	}
	got := payments[0]
	if got.ID != firstID || got.Status != models.Paid {
		t.Errorf("expected stable id and status, got %+v", got)
	}
	// The audit timestamp still advances
	if !got.RecordedAt.Equal(t1) {
		t.Errorf("expected recordedAt to advance to %v, got %v", t1, got.RecordedAt)
	}
}

func TestRecord_DistinctDatesAndStudents(t *testing.T) {
	now := time.Now()
	payments := Record(nil, "s1", "2024-01-10", models.Paid, "u1", now)
	payments = Record(payments, "s1", "2024-01-11", models.Paid, "u1", now)
	payments = Record(payments, "s2", "2024-01-10", models.Paid, "u1", now)
	if len(payments) != 3 {
		t.Errorf("expected 3 records for distinct pairs, got %d", len(payments))
	}
}

// An anonymous recording attempt is a no-op, not an error.
func TestRecord_AnonymousIsNoOp(t *testing.T) {
	payments := Record(nil, "s1", "2024-01-10", models.Paid, "", time.Now())
	if len(payments) != 0 {
		t.Errorf("expected no record without an acting user, got %d", len(payments))
	}
}

func TestStatusFor_DefaultsToNotPaid(t *testing.T) {
	if got := StatusFor(nil, "s1", "2024-01-10"); got != models.NotPaid {
		t.Errorf("expected NOT_PAID for missing record, got %s", got)
	}
}

// A student is excluded from the unpaid list exactly when a Paid record
// exists for that (student, date) pair.
func TestUnpaidStudents_Complementarity(t *testing.T) {
	students := []*models.Student{
		student("s1", "Amy", "st1"),
		student("s2", "Bob", "st1"),
		student("s3", "Cara", "st2"),
	}

	tests := []struct {
		name     string
		payments []*models.Payment
		wantIDs  []string
	}{
		{
			"no records means everyone unpaid",
			nil,
			[]string{"s1", "s2"},
		},
		{
			"paid record excludes",
			[]*models.Payment{payment("p1", "s1", "2024-01-10", models.Paid)},
			[]string{"s2"},
		},
		{
			"explicit not-paid still counts as unpaid",
			[]*models.Payment{payment("p1", "s1", "2024-01-10", models.NotPaid)},
			[]string{"s1", "s2"},
		},
		{
			"paid on another day does not count",
			[]*models.Payment{payment("p1", "s1", "2024-01-09", models.Paid)},
			[]string{"s1", "s2"},
		},
		{
			"other station's payment ignored",
			[]*models.Payment{payment("p1", "s3", "2024-01-10", models.Paid)},
			[]string{"s1", "s2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UnpaidStudents(students, tt.payments, "st1", "2024-01-10")
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("expected %d unpaid, got %d", len(tt.wantIDs), len(got))
			}
			for i, want := range tt.wantIDs {
				if got[i].ID != want {
					t.Errorf("unpaid[%d]: expected %s, got %s", i, want, got[i].ID)
				}
			}
		})
	}
}

// An empty station spans all stations, the same convention PaidOnDate
// uses, so the two views stay complementary over the full roster.
func TestUnpaidStudents_EmptyStationSpansAll(t *testing.T) {
	students := []*models.Student{
		student("s1", "Amy", "st1"),
		student("s2", "Bob", "st1"),
		student("s3", "Cara", "st2"),
	}
	payments := []*models.Payment{
		payment("p1", "s1", "2024-01-10", models.Paid),
	}

	got := UnpaidStudents(students, payments, "", "2024-01-10")
	if len(got) != 2 || got[0].ID != "s2" || got[1].ID != "s3" {
		t.Fatalf("expected unpaid [s2 s3], got %+v", got)
	}

	paid := PaidOnDate(students, payments, "", "2024-01-10")
	if paid+len(got) != len(students) {
		t.Errorf("paid (%d) plus unpaid (%d) should cover all %d students", paid, len(got), len(students))
	}
}

func TestPaidOnDate(t *testing.T) {
	students := []*models.Student{
		student("s1", "Amy", "st1"),
		student("s2", "Bob", "st1"),
		student("s3", "Cara", "st2"),
	}
	payments := []*models.Payment{
		payment("p1", "s1", "2024-01-10", models.Paid),
		payment("p2", "s2", "2024-01-10", models.NotPaid),
		payment("p3", "s3", "2024-01-10", models.Paid),
		payment("p4", "s1", "2024-01-09", models.Paid),
	}

	if got := PaidOnDate(students, payments, "st1", "2024-01-10"); got != 1 {
		t.Errorf("station st1: expected 1 paid, got %d", got)
	}
	if got := PaidOnDate(students, payments, "", "2024-01-10"); got != 2 {
		t.Errorf("all stations: expected 2 paid, got %d", got)
	}
	if got := PaidOnDate(students, payments, "st2", "2024-01-11"); got != 0 {
		t.Errorf("empty day: expected 0 paid, got %d", got)
	}
}

func TestCollectionAmount(t *testing.T) {
	if got := CollectionAmount(3, 5.00); got != 15.00 {
		t.Errorf("expected 15.00, got %.2f", got)
	}
	if got := CollectionAmount(0, 5.00); got != 0 {
		t.Errorf("expected 0, got %.2f", got)
	}
}

// Station S1 has students A and B; only A paid on 2024-01-10.
func TestStationScenario(t *testing.T) {
	students := []*models.Student{
		student("a", "A", "S1"),
		student("b", "B", "S1"),
	}
	payments := []*models.Payment{
		payment("p1", "a", "2024-01-10", models.Paid),
	}

	unpaid := UnpaidStudents(students, payments, "S1", "2024-01-10")
	if len(unpaid) != 1 || unpaid[0].ID != "b" {
		t.Fatalf("expected unpaid = [B], got %+v", unpaid)
	}

	paid := PaidOnDate(students, payments, "S1", "2024-01-10")
	if paid != 1 {
		t.Fatalf("expected paidToday = 1, got %d", paid)
	}

	if got := CollectionAmount(paid, 5.00); got != 5.00 {
		t.Errorf("expected collection 5.00, got %.2f", got)
	}
}

func TestStationSummaries(t *testing.T) {
	stations := []*models.Station{
		{ID: "st1", Name: "West"},
		{ID: "st2", Name: "East"},
	}
	students := []*models.Student{
		student("s1", "Amy", "st1"),
		student("s2", "Bob", "st1"),
		student("s3", "Cara", "st2"),
	}
	payments := []*models.Payment{
		payment("p1", "s1", "2024-01-10", models.Paid),
		payment("p2", "s3", "2024-01-10", models.Paid),
	}

	summaries := StationSummaries(stations, students, payments, "2024-01-10", 5.00)
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}

	west := summaries[0]
	if west.PaidCount != 1 || west.TotalStudents != 2 || west.TotalCollection != 5.00 {
		t.Errorf("West summary wrong: %+v", west)
	}
	east := summaries[1]
	if east.PaidCount != 1 || east.TotalStudents != 1 || east.TotalCollection != 5.00 {
		t.Errorf("East summary wrong: %+v", east)
	}
}
