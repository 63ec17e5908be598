package validators

import (
	"github.com/go-playground/validator/v10"
)

// BlockSizeValidation validates the block width based on the algorithm type (feistel8 or spn16).
func BlockSizeValidation(fl validator.FieldLevel) bool {
	algorithm := fl.Parent().FieldByName("Algorithm").String()
	width := len(fl.Field().String())

	switch algorithm {
	case "feistel8":
		return width == 8
	case "spn16":
		return width == 16
	default:
		return false
	}
}
