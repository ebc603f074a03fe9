package responses

type PurchaseItem struct {
	MedicationID string `json:"medication_id"`
	DrugName     string `json:"drug_name"`
	Quantity     int    `json:"quantity"`
	StartTime    string `json:"start_time,omitempty"`
}

type Purchase struct {
	PurchaseID string         `json:"purchase_id"`
	PatientID  string         `json:"patient_id"`
	Items      []PurchaseItem `json:"items"`
	CreatedAt  string         `json:"created_at"`
}

type PurchaseTotal struct {
	MedicationID  string `json:"medication_id"`
	DrugName      string `json:"drug_name"`
	TotalQuantity int    `json:"total_quantity"`
}
