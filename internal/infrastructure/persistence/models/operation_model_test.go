//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/arya2004/cybersecurity/internal/domain/operations"
	"github.com/stretchr/testify/assert"
)

func TestOperationModel_ToDomain(t *testing.T) {
	// Setup a test OperationModel instance
	operationModel := &OperationModel{
		ID:              "test-id",
		Algorithm:       "feistel8",
		Operation:       "encrypt",
		Input:           "10111101",
		Output:          "01110101",
		KeyFingerprint:  "9fb7b24b6574a583",
		DateTimeCreated: time.Now(),
		UserID:          "user-id",
	}

	// Convert to domain
	operationMeta := operationModel.ToDomain()

	// Assertions to ensure the conversion is correct
	assert.Equal(t, operationModel.ID, operationMeta.ID)
	assert.Equal(t, operationModel.Algorithm, operationMeta.Algorithm)
	assert.Equal(t, operationModel.Operation, operationMeta.Operation)
	assert.Equal(t, operationModel.Input, operationMeta.Input)
	assert.Equal(t, operationModel.Output, operationMeta.Output)
	assert.Equal(t, operationModel.KeyFingerprint, operationMeta.KeyFingerprint)
	assert.Equal(t, operationModel.DateTimeCreated, operationMeta.DateTimeCreated)
	assert.Equal(t, operationModel.UserID, operationMeta.UserID)
}

func TestOperationModel_FromDomain(t *testing.T) {
	// Setup a test OperationMeta instance (domain entity)
	operationMeta := &operations.OperationMeta{
		ID:              "test-id",
		Algorithm:       "spn16",
		Operation:       "decrypt",
		Input:           "0010010011101100",
		Output:          "1101011100101000",
		KeyFingerprint:  "9fb7b24b6574a583",
		DateTimeCreated: time.Now(),
		UserID:          "user-id",
	}

	// Convert to OperationModel
	operationModel := &OperationModel{}
	operationModel.FromDomain(operationMeta)

	// Assertions to ensure the conversion is correct
	assert.Equal(t, operationMeta.ID, operationModel.ID)
	assert.Equal(t, operationMeta.Algorithm, operationModel.Algorithm)
	assert.Equal(t, operationMeta.Operation, operationModel.Operation)
	assert.Equal(t, operationMeta.Input, operationModel.Input)
	assert.Equal(t, operationMeta.Output, operationModel.Output)
	assert.Equal(t, operationMeta.KeyFingerprint, operationModel.KeyFingerprint)
	assert.Equal(t, operationMeta.DateTimeCreated, operationModel.DateTimeCreated)
	assert.Equal(t, operationMeta.UserID, operationModel.UserID)
}

func TestOperationModel_TableName(t *testing.T) {
	assert.Equal(t, "cipher_operations", OperationModel{}.TableName())
}
