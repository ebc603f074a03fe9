package requests

type RegisterHospital struct {
	Name           string `json:"name" validate:"required,min=3,max=100"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"password"`
	RetypePassword string `json:"retype_password" validate:"required"`
	Address        string `json:"address,omitempty"`
	Phone          string `json:"phone,omitempty"`
}

type LoginHospital struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type RefreshToken struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}
