package requests

type CreatePatient struct {
	FullName    string `json:"full_name" validate:"required,min=2,max=100"`
	DateOfBirth string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Gender      string `json:"gender" validate:"required,oneof=male female other"`
	PhoneNumber string `json:"phone_number" validate:"required,min=8,max=20"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
}

type UpdatePatient struct {
	FullName    string `json:"full_name,omitempty" validate:"omitempty,min=2,max=100"`
	DateOfBirth string `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender      string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	PhoneNumber string `json:"phone_number,omitempty" validate:"omitempty,min=8,max=20"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
}
