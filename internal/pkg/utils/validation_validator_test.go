package utils

import (
	"healthtrack-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newCreateMedicationRequest(frequency requests.DosingFrequency, duration requests.DosingDuration) *requests.CreateMedication {
	return &requests.CreateMedication{
		DrugName:        "Amoxicillin",
		DoseDescription: "500mg after meals",
		Frequency:       frequency,
		Duration:        duration,
		QuantityInStock: 100,
		Price:           12.5,
	}
}

func TestValidateStruct_DosingFrequencyBounds(t *testing.T) {
	duration := requests.DosingDuration{Value: 5, Unit: "days"}

	tests := []struct {
		name      string
		frequency requests.DosingFrequency
		wantErr   bool
	}{
		{
			name:      "three times per day is valid",
			frequency: requests.DosingFrequency{Value: 3, Unit: "days"},
		},
		{
			name:      "hourly is the densest daily schedule allowed",
			frequency: requests.DosingFrequency{Value: 24, Unit: "days"},
		},
		{
			name:      "more times per day than hours in a day is rejected",
			frequency: requests.DosingFrequency{Value: 25, Unit: "days"},
			wantErr:   true,
		},
		{
			name:      "hour intervals longer than a day are valid",
			frequency: requests.DosingFrequency{Value: 36, Unit: "hours"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(newCreateMedicationRequest(tt.frequency, duration))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateStruct_ZeroDosingDuration(t *testing.T) {
	request := newCreateMedicationRequest(
		requests.DosingFrequency{Value: 2, Unit: "days"},
		requests.DosingDuration{Value: 0, Unit: "days"},
	)

	assert.NoError(t, ValidateStruct(request))
}

func TestValidateStruct_NegativeDosingDuration(t *testing.T) {
	request := newCreateMedicationRequest(
		requests.DosingFrequency{Value: 2, Unit: "days"},
		requests.DosingDuration{Value: -1, Unit: "days"},
	)

	assert.Error(t, ValidateStruct(request))
}
