package validators

import (
	"github.com/go-playground/validator/v10"
)

// BitStringValidation reports whether the field consists solely of '0' and '1' characters.
func BitStringValidation(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return false
	}
	for _, r := range value {
		if r != '0' && r != '1' {
			return false
		}
	}
	return true
}
