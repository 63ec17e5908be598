package operations

import (
	"errors"
	"fmt"
	"time"

	"github.com/arya2004/cybersecurity/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// OperationMeta entity records a single cipher execution. The key itself is
// never stored; KeyFingerprint holds a 64-bit xxh3 digest of the key bits.
type OperationMeta struct {
	ID              string    `validate:"required,uuid4"`
	Algorithm       string    `validate:"required,oneof=feistel8 spn16"`
	Operation       string    `validate:"required,oneof=encrypt decrypt"`
	Input           string    `validate:"required,bitstring,blocksize"`
	Output          string    `validate:"required,bitstring,blocksize"`
	KeyFingerprint  string    `validate:"required,hexadecimal,len=16"`
	DateTimeCreated time.Time `validate:"required"`
	UserID          string    `validate:"required,uuid4"`
}

// Validate for validating OperationMeta struct
func (o *OperationMeta) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("bitstring", validators.BitStringValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}
	if err := validate.RegisterValidation("blocksize", validators.BlockSizeValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(o)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
