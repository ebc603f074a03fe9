package utils

import (
	"healthtrack-service/internal/pkg/constvars"
	"healthtrack-service/internal/pkg/dto/requests"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterStructValidation(validateDosingFrequency, requests.DosingFrequency{})
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validateDosingFrequency bounds "N times per day" at 24 so expansion can
// always space events at least an hour apart within one day.
func validateDosingFrequency(sl validator.StructLevel) {
	freq := sl.Current().Interface().(requests.DosingFrequency)
	if freq.Unit == constvars.FrequencyUnitDays && freq.Value > constvars.HoursPerDay {
		sl.ReportError(freq.Value, "Value", "Value", "lte", "24")
	}
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar).MatchString(password)
	hasUppercase := regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase).MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}
