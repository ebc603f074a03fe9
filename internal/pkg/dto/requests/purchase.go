package requests

type PurchaseItem struct {
	MedicationID string `json:"medication_id" validate:"required"`
	Quantity     int    `json:"quantity" validate:"required,gt=0"`
	StartTime    string `json:"start_time,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

type CreatePurchase struct {
	PatientID string         `json:"patient_id" validate:"required"`
	Items     []PurchaseItem `json:"items" validate:"required,min=1,dive"`
}
