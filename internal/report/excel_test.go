package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"poshan-board/internal/domain"
)

func TestGenerate(t *testing.T) {
	beds := []domain.Bed{
		{ID: "b1", Number: "P-1", Ward: "Pediatric", Status: domain.BedOccupied, PatientID: "p1", AdmissionDate: "2026-08-01"},
		{ID: "b2", Number: "M-1", Ward: "Maternity", Status: domain.BedAvailable},
	}
	patients := []domain.Patient{
		{ID: "p1", RegistrationNo: "REG-001", Name: "Ravi", Category: domain.PatientChild, NutritionStatus: domain.NutritionSeverelyMalnourished, BedID: "b1"},
	}

	data, err := Generate(beds, patients)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue(bedSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "P-1", got)

	got, err = f.GetCellValue(bedSheet, "C2")
	require.NoError(t, err)
	assert.Equal(t, "occupied", got)

	got, err = f.GetCellValue(patientSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "REG-001", got)

	got, err = f.GetCellValue(patientSheet, "D2")
	require.NoError(t, err)
	assert.Equal(t, "severely_malnourished", got)
}
