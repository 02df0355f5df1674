package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"poshan-board/internal/domain"
)

// Column headers for the two report sheets.
var (
	bedSheetHeader = []string{
		"Bed Number", "Ward", "Status", "Patient ID", "Admission Date",
	}
	patientSheetHeader = []string{
		"Registration No", "Name", "Category", "Nutrition Status", "Bed ID",
	}
)

const (
	bedSheet     = "Bed Occupancy"
	patientSheet = "Patient Register"
)

// Generate builds the downloadable workbook: one sheet of bed occupancy,
// one sheet of the patient register.
func Generate(beds []domain.Bed, patients []domain.Patient) ([]byte, error) {
	f := excelize.NewFile()
	// Don't defer Close(): WriteTo needs the file open.

	index, err := f.NewSheet(bedSheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if _, err := f.NewSheet(patientSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	if err := writeHeader(f, bedSheet, bedSheetHeader); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeHeader(f, patientSheet, patientSheetHeader); err != nil {
		f.Close()
		return nil, err
	}

	for i, bed := range beds {
		row := i + 2
		values := []any{bed.Number, bed.Ward, bed.Status, bed.PatientID, bed.AdmissionDate}
		if err := writeRow(f, bedSheet, row, values); err != nil {
			f.Close()
			return nil, err
		}
	}

	for i, p := range patients {
		row := i + 2
		values := []any{p.RegistrationNo, p.Name, string(p.Category), p.NutritionStatus, p.BedID}
		if err := writeRow(f, patientSheet, row, values); err != nil {
			f.Close()
			return nil, err
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeHeader(f *excelize.File, sheet string, headers []string) error {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return fmt.Errorf("failed to set header style: %w", err)
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cell, err)
		}
	}
	return nil
}
