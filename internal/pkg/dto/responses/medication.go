package responses

type DosingFrequency struct {
	Value int    `json:"value"`
	Unit  string `json:"unit"`
}

type DosingDuration struct {
	Value int    `json:"value"`
	Unit  string `json:"unit"`
}

type Medication struct {
	MedicationID    string          `json:"medication_id"`
	DrugName        string          `json:"drug_name"`
	DoseDescription string          `json:"dose_description"`
	Frequency       DosingFrequency `json:"frequency"`
	Duration        DosingDuration  `json:"duration"`
	QuantityInStock int             `json:"quantity_in_stock"`
	Price           float64         `json:"price"`
	ExpiryDate      string          `json:"expiry_date,omitempty"`
	Barcode         string          `json:"barcode,omitempty"`
	Notes           string          `json:"notes,omitempty"`
}

type InventoryReport struct {
	TotalMedications int          `json:"total_medications"`
	LowStock         []Medication `json:"low_stock"`
	Expired          []Medication `json:"expired"`
}
