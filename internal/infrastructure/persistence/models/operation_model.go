package models

import (
	"time"

	"github.com/arya2004/cybersecurity/internal/domain/operations"
)

// OperationModel is the GORM database model for cipher operation records (infrastructure concern)
type OperationModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	Algorithm       string    `gorm:"not null;index;type:varchar(20)"`
	Operation       string    `gorm:"not null;index;type:varchar(10)"`
	Input           string    `gorm:"not null;type:varchar(16)"`
	Output          string    `gorm:"not null;type:varchar(16)"`
	KeyFingerprint  string    `gorm:"not null;index;type:char(16)"`
	DateTimeCreated time.Time `gorm:"not null"`
	UserID          string    `gorm:"not null;index;type:varchar(255)"`
}

// TableName specifies the table name for GORM
func (OperationModel) TableName() string {
	return "cipher_operations"
}

// ToDomain converts GORM model to domain entity
func (m *OperationModel) ToDomain() *operations.OperationMeta {
	return &operations.OperationMeta{
		ID:              m.ID,
		Algorithm:       m.Algorithm,
		Operation:       m.Operation,
		Input:           m.Input,
		Output:          m.Output,
		KeyFingerprint:  m.KeyFingerprint,
		DateTimeCreated: m.DateTimeCreated,
		UserID:          m.UserID,
	}
}

// FromDomain converts domain entity to GORM model
func (m *OperationModel) FromDomain(op *operations.OperationMeta) {
	m.ID = op.ID
	m.Algorithm = op.Algorithm
	m.Operation = op.Operation
	m.Input = op.Input
	m.Output = op.Output
	m.KeyFingerprint = op.KeyFingerprint
	m.DateTimeCreated = op.DateTimeCreated
	m.UserID = op.UserID
}
