package reports

import (
	"fmt"
	"io"

	"github.com/CalvinOheneba/Feeding/app/models"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Payments"

var exportHeaders = []string{"Student Name", "Station", "Date", "Status", "Amount"}

// WriteExcel renders the report rows as an .xlsx workbook with a single
// "Payments" sheet, preserving row order.
func WriteExcel(rows []models.ReportRow, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return err
		}
	}

	for i, row := range rows {
		values := []interface{}{row.StudentName, row.StationName, row.Date, row.Status, row.Amount}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
