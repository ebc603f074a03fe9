package responses

type HospitalProfile struct {
	HospitalID     string `json:"hospital_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Address        string `json:"address,omitempty"`
	Phone          string `json:"phone,omitempty"`
	OperatingHours string `json:"operating_hours,omitempty"`
}
