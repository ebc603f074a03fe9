package requests

type UpdateHospitalProfile struct {
	Name           string `json:"name,omitempty" validate:"omitempty,min=3,max=100"`
	Address        string `json:"address,omitempty"`
	Phone          string `json:"phone,omitempty"`
	OperatingHours string `json:"operating_hours,omitempty"`
}
