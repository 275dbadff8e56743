package reports

import (
	"bytes"
	"testing"

	"github.com/CalvinOheneba/Feeding/app/models"
	"github.com/xuri/excelize/v2"
)

var exportRows = []models.ReportRow{
	{StudentName: "Amy", StationName: "East", Date: "2024-01-10", Status: "Paid", Amount: 5.00},
	{StudentName: "Bob", StationName: "West", Date: "2024-01-10", Status: "Not Paid", Amount: 0.00},
}

func TestWriteExcel_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteExcel(exportRows, &buf); err != nil {
		t.Fatalf("WriteExcel failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("workbook did not open: %v", err)
	}
	defer f.Close()

	got, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("reading sheet: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected header + 2 rows, got %d rows", len(got))
	}

	for i, header := range exportHeaders {
		if got[0][i] != header {
			t.Errorf("header %d: expected %q, got %q", i, header, got[0][i])
		}
	}
	if got[1][0] != "Amy" || got[1][1] != "East" || got[1][3] != "Paid" {
		t.Errorf("first data row wrong: %v", got[1])
	}
	if got[2][0] != "Bob" || got[2][3] != "Not Paid" {
		t.Errorf("second data row wrong: %v", got[2])
	}
}

func TestWriteExcel_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteExcel(nil, &buf); err != nil {
		t.Fatalf("WriteExcel on empty rows failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected a workbook with headers even for an empty report")
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(exportRows, "Payment Report for 2024-01-10", &buf); err != nil {
		t.Fatalf("WritePDF failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected PDF output")
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output does not look like a PDF document")
	}
}
