package reports

import (
	"fmt"
	"io"

	"github.com/CalvinOheneba/Feeding/app/models"
	"github.com/jung-kurt/gofpdf"
)

// SchoolName appears as the heading of every exported PDF report.
const SchoolName = "Advent Reformed Institute"

// WritePDF renders the report rows as a grid-style PDF table under the
// school name and the given title, preserving row order.
func WritePDF(rows []models.ReportRow, title string, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, SchoolName)
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(12)

	colWidths := []float64{55, 40, 30, 30, 25}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(38, 128, 235)
	pdf.SetTextColor(255, 255, 255)
	for i, header := range exportHeaders {
		pdf.CellFormat(colWidths[i], 8, header, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range rows {
		cells := []string{
			row.StudentName,
			row.StationName,
			row.Date,
			row.Status,
			fmt.Sprintf("%.2f", row.Amount),
		}
		for i, cell := range cells {
			pdf.CellFormat(colWidths[i], 8, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
