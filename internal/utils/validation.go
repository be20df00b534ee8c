package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validators
	validate.RegisterValidation("vin", validateVIN)
	validate.RegisterValidation("phone", validatePhone)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidationErrors flattens validator errors into a field -> message map
// suitable for the response envelope.
func ValidationErrors(err error) map[string]string {
	details := make(map[string]string)

	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, ferr := range verrs {
			details[strings.ToLower(ferr.Field())] = "failed on '" + ferr.Tag() + "' validation"
		}
		return details
	}

	details["request"] = err.Error()
	return details
}

// Letters I, O and Q are never used in a VIN.
var vinPattern = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{11,17}$`)

func validateVIN(fl validator.FieldLevel) bool {
	return IsValidVIN(fl.Field().String())
}

func IsValidVIN(vin string) bool {
	return vinPattern.MatchString(strings.ToUpper(vin))
}

var phonePattern = regexp.MustCompile(`^\+?[0-9\-\s().]{7,20}$`)

func validatePhone(fl validator.FieldLevel) bool {
	return IsValidPhone(fl.Field().String())
}

func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
