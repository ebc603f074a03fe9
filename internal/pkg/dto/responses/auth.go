package responses

type RegisterHospital struct {
	HospitalID string `json:"hospital_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

type LoginHospital struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type RefreshToken struct {
	AccessToken string `json:"access_token"`
}
