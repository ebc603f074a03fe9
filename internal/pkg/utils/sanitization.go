package utils

import (
	"healthtrack-service/internal/pkg/dto/requests"
	"strings"
	"unicode"
)

func capitalizeFirstLetter(s string) string {
	if len(s) == 0 {
		return s
	}

	first := string(unicode.ToUpper(rune(s[0])))

	return first + s[1:]
}

func SanitizeRegisterHospitalRequest(input *requests.RegisterHospital) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Password = strings.TrimSpace(input.Password)
	input.RetypePassword = strings.TrimSpace(input.RetypePassword)
	input.Address = strings.TrimSpace(input.Address)
	input.Phone = strings.TrimSpace(input.Phone)
}

func SanitizeLoginHospitalRequest(input *requests.LoginHospital) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Password = strings.TrimSpace(input.Password)
}

func SanitizeCreatePatientRequest(input *requests.CreatePatient) {
	input.FullName = capitalizeFirstLetter(strings.TrimSpace(input.FullName))
	input.DateOfBirth = strings.TrimSpace(input.DateOfBirth)
	input.Gender = strings.ToLower(strings.TrimSpace(input.Gender))
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
}

func SanitizeUpdatePatientRequest(input *requests.UpdatePatient) {
	input.FullName = capitalizeFirstLetter(strings.TrimSpace(input.FullName))
	input.DateOfBirth = strings.TrimSpace(input.DateOfBirth)
	input.Gender = strings.ToLower(strings.TrimSpace(input.Gender))
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
}

func SanitizeCreateMedicationRequest(input *requests.CreateMedication) {
	input.DrugName = strings.TrimSpace(input.DrugName)
	input.DoseDescription = strings.TrimSpace(input.DoseDescription)
	input.Frequency.Unit = strings.ToLower(strings.TrimSpace(input.Frequency.Unit))
	input.Duration.Unit = strings.ToLower(strings.TrimSpace(input.Duration.Unit))
	input.ExpiryDate = strings.TrimSpace(input.ExpiryDate)
	input.Barcode = strings.TrimSpace(input.Barcode)
	input.Notes = strings.TrimSpace(input.Notes)
}

func SanitizeUpdateMedicationRequest(input *requests.UpdateMedication) {
	input.DrugName = strings.TrimSpace(input.DrugName)
	input.DoseDescription = strings.TrimSpace(input.DoseDescription)
	if input.Frequency != nil {
		input.Frequency.Unit = strings.ToLower(strings.TrimSpace(input.Frequency.Unit))
	}
	if input.Duration != nil {
		input.Duration.Unit = strings.ToLower(strings.TrimSpace(input.Duration.Unit))
	}
	input.ExpiryDate = strings.TrimSpace(input.ExpiryDate)
	input.Barcode = strings.TrimSpace(input.Barcode)
	input.Notes = strings.TrimSpace(input.Notes)
}
