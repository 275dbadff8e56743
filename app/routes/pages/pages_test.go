package pages

import (
	"testing"

	"github.com/CalvinOheneba/Feeding/app/models"
)

func TestPagesForRole(t *testing.T) {
	tests := []struct {
		name      string
		role      models.Role
		wantPages []string
		wantErr   bool
	}{
		{"admin", models.RoleAdmin, []string{"dashboard", "stations", "teachers", "students", "reports"}, false},
		{"teacher", models.RoleTeacher, []string{"dashboard", "payments", "reports"}, false},
		{"unknown role fails", models.Role("PARENT"), nil, true},
		{"empty role fails", models.Role(""), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PagesForRole(tt.role)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.wantPages) {
				t.Fatalf("expected %d pages, got %d", len(tt.wantPages), len(got))
			}
			for i, want := range tt.wantPages {
				if got[i] != want {
					t.Errorf("page %d: expected %q, got %q", i, want, got[i])
				}
			}
			if got[0] != InitialPage {
				t.Errorf("initial page %q must be reachable first, got %q", InitialPage, got[0])
			}
		})
	}
}
