package utils

import (
	"healthtrack-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRegisterHospitalRequest(t *testing.T) {
	input := &requests.RegisterHospital{
		Name:           "  Mercy General ",
		Email:          " Admin@Mercy.Example ",
		Password:       " Secret123! ",
		RetypePassword: " Secret123! ",
		Address:        " Jl. Sudirman 1 ",
		Phone:          " +62215550123 ",
	}

	SanitizeRegisterHospitalRequest(input)

	assert.Equal(t, "Mercy General", input.Name)
	assert.Equal(t, "admin@mercy.example", input.Email)
	assert.Equal(t, "Secret123!", input.Password)
	assert.Equal(t, "Secret123!", input.RetypePassword)
	assert.Equal(t, "Jl. Sudirman 1", input.Address)
	assert.Equal(t, "+62215550123", input.Phone)
}

func TestSanitizeCreatePatientRequest(t *testing.T) {
	input := &requests.CreatePatient{
		FullName:    "  jane roe ",
		DateOfBirth: " 1990-05-14 ",
		Gender:      " Female ",
		PhoneNumber: " +628123456789 ",
		Email:       " Jane@Example.Com ",
	}

	SanitizeCreatePatientRequest(input)

	assert.Equal(t, "Jane roe", input.FullName)
	assert.Equal(t, "1990-05-14", input.DateOfBirth)
	assert.Equal(t, "female", input.Gender)
	assert.Equal(t, "+628123456789", input.PhoneNumber)
	assert.Equal(t, "jane@example.com", input.Email)
}

func TestSanitizeCreateMedicationRequest(t *testing.T) {
	input := &requests.CreateMedication{
		DrugName:        " Amoxicillin ",
		DoseDescription: " 500mg after meals ",
		Frequency:       requests.DosingFrequency{Value: 3, Unit: " Days "},
		Duration:        requests.DosingDuration{Value: 5, Unit: " DAYS "},
		ExpiryDate:      " 2027-01-01 ",
		Barcode:         " 8991234567890 ",
		Notes:           " keep refrigerated ",
	}

	SanitizeCreateMedicationRequest(input)

	assert.Equal(t, "Amoxicillin", input.DrugName)
	assert.Equal(t, "500mg after meals", input.DoseDescription)
	assert.Equal(t, "days", input.Frequency.Unit)
	assert.Equal(t, "days", input.Duration.Unit)
	assert.Equal(t, "2027-01-01", input.ExpiryDate)
	assert.Equal(t, "8991234567890", input.Barcode)
	assert.Equal(t, "keep refrigerated", input.Notes)
}

func TestSanitizeUpdateMedicationRequest_NilUnits(t *testing.T) {
	input := &requests.UpdateMedication{
		DrugName: " Ibuprofen ",
	}

	SanitizeUpdateMedicationRequest(input)

	assert.Equal(t, "Ibuprofen", input.DrugName)
	assert.Nil(t, input.Frequency)
	assert.Nil(t, input.Duration)
}
