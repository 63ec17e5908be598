package validators

import (
	"github.com/go-playground/validator/v10"
)

// KeySizeValidation validates the key width based on the algorithm type (feistel8 or spn16).
func KeySizeValidation(fl validator.FieldLevel) bool {
	algorithm := fl.Parent().FieldByName("Algorithm").String()
	width := len(fl.Field().String())

	switch algorithm {
	case "feistel8":
		return width == 10
	case "spn16":
		return width == 16
	default:
		return false
	}
}
