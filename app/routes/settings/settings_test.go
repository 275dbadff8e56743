package settings

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/CalvinOheneba/Feeding/app/models"
)

// The backup layout must round-trip exactly: serialize, deserialize,
// identical structure, with the four collection keys plus currentUser.
func TestBackupRoundTrip(t *testing.T) {
	stationID := "11111111-1111-1111-1111-111111111111"
	recordedAt := time.Date(2024, 1, 10, 7, 30, 0, 0, time.UTC)

	original := Backup{
		Users: []*models.User{
			{ID: "u1", Name: "Admin User", Email: "admin@school.com", Role: models.RoleAdmin, IsActive: true},
			{ID: "u2", Name: "Teacher Alice", Email: "alice@school.com", Role: models.RoleTeacher, StationID: &stationID, IsActive: true},
		},
		Stations: []*models.Station{
			{ID: stationID, Name: "West Gate"},
		},
		Students: []*models.Student{
			{ID: "s1", FullName: "Amy", StationID: stationID},
		},
		Payments: []*models.Payment{
			{ID: "p1", StudentID: "s1", Date: "2024-01-10", Status: models.Paid, RecordedBy: "u2", RecordedAt: recordedAt},
		},
		CurrentUser: &models.User{ID: "u1", Name: "Admin User", Email: "admin@school.com", Role: models.RoleAdmin, IsActive: true},
	}

	raw, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded Backup
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !reflect.DeepEqual(original, decoded) {
		t.Errorf("backup did not round-trip:\noriginal: %+v\ndecoded:  %+v", original, decoded)
	}
}

func TestBackupKeys(t *testing.T) {
	raw, err := json.Marshal(Backup{})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var blob map[string]json.RawMessage
	if err := json.Unmarshal(raw, &blob); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	for _, key := range []string{"users", "stations", "students", "payments", "currentUser"} {
		if _, ok := blob[key]; !ok {
			t.Errorf("backup blob is missing key %q", key)
		}
	}
}

func TestPaymentFieldNames(t *testing.T) {
	raw, err := json.Marshal(models.Payment{ID: "p1", StudentID: "s1", Date: "2024-01-10", Status: models.Paid, RecordedBy: "u1"})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	for _, key := range []string{"id", "studentId", "date", "status", "recordedBy", "recordedAt"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("payment JSON is missing field %q", key)
		}
	}
	if fields["status"] != "PAID" {
		t.Errorf("expected status PAID, got %v", fields["status"])
	}
}
