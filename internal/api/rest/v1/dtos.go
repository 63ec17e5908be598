package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/arya2004/cybersecurity/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// CipherRequest represents the payload for running a cipher operation
type CipherRequest struct {
	Algorithm string `json:"algorithm" validate:"required,oneof=feistel8 spn16"`
	Block     string `json:"block" validate:"required,bitstring,blocksize"`
	Key       string `json:"key" validate:"required,bitstring,keysize"`
}

// Validate for validating CipherRequest struct. Widths are validated against
// the selected algorithm; the engine re-checks them before any transform.
func (r *CipherRequest) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("bitstring", validators.BitStringValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}
	if err := validate.RegisterValidation("blocksize", validators.BlockSizeValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}
	if err := validate.RegisterValidation("keysize", validators.KeySizeValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(r)
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

// OperationResponse represents a recorded cipher operation returned by the API
type OperationResponse struct {
	ID              string    `json:"id"`
	Algorithm       string    `json:"algorithm"`
	Operation       string    `json:"operation"`
	Input           string    `json:"input"`
	Output          string    `json:"output"`
	KeyFingerprint  string    `json:"key_fingerprint"`
	DateTimeCreated time.Time `json:"date_time_created"`
	UserID          string    `json:"user_id"`
}

// AlgorithmResponse describes an available cipher construction
type AlgorithmResponse struct {
	Algorithm     string `json:"algorithm"`
	BlockSize     int    `json:"block_size"`
	KeySize       int    `json:"key_size"`
	RoundKeyCount int    `json:"round_key_count"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse represents an informational response
type InfoResponse struct {
	Message string `json:"message"`
}
