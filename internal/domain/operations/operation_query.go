package operations

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// OperationQuery filters and pages listings of recorded cipher operations.
type OperationQuery struct {
	Algorithm       string    `validate:"omitempty,oneof=feistel8 spn16"`
	Operation       string    `validate:"omitempty,oneof=encrypt decrypt"`
	DateTimeCreated time.Time `validate:"omitempty"`

	Limit     int    `validate:"omitempty,min=1,max=100"`
	Offset    int    `validate:"omitempty,min=0"`
	SortBy    string `validate:"omitempty,oneof=date_time_created algorithm operation"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewOperationQuery creates an OperationQuery with sane paging defaults.
func NewOperationQuery() *OperationQuery {
	return &OperationQuery{
		Limit:  10,
		Offset: 0,
	}
}

// Validate for validating OperationQuery struct
func (q *OperationQuery) Validate() error {
	validate := validator.New()

	err := validate.Struct(q)
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
