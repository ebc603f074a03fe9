package requests

type DosingFrequency struct {
	Value int    `json:"value" validate:"required,gt=0"`
	Unit  string `json:"unit" validate:"required,oneof=days hours"`
}

type DosingDuration struct {
	// Zero is a valid duration: it means the course needs no reminders.
	Value int    `json:"value" validate:"gte=0"`
	Unit  string `json:"unit" validate:"required,oneof=days weeks"`
}

type CreateMedication struct {
	DrugName        string          `json:"drug_name" validate:"required,min=2,max=200"`
	DoseDescription string          `json:"dose_description" validate:"required,max=200"`
	Frequency       DosingFrequency `json:"frequency" validate:"required"`
	Duration        DosingDuration  `json:"duration" validate:"required"`
	QuantityInStock int             `json:"quantity_in_stock" validate:"gte=0"`
	Price           float64         `json:"price" validate:"gte=0"`
	ExpiryDate      string          `json:"expiry_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Barcode         string          `json:"barcode,omitempty" validate:"omitempty,max=64"`
	Notes           string          `json:"notes,omitempty" validate:"omitempty,max=500"`
}

type UpdateMedication struct {
	DrugName        string           `json:"drug_name,omitempty" validate:"omitempty,min=2,max=200"`
	DoseDescription string           `json:"dose_description,omitempty" validate:"omitempty,max=200"`
	Frequency       *DosingFrequency `json:"frequency,omitempty"`
	Duration        *DosingDuration  `json:"duration,omitempty"`
	QuantityInStock *int             `json:"quantity_in_stock,omitempty" validate:"omitempty,gte=0"`
	Price           *float64         `json:"price,omitempty" validate:"omitempty,gte=0"`
	ExpiryDate      string           `json:"expiry_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Barcode         string           `json:"barcode,omitempty" validate:"omitempty,max=64"`
	Notes           string           `json:"notes,omitempty" validate:"omitempty,max=500"`
}
