package operations

import (
	"context"

	"github.com/arya2004/cybersecurity/internal/domain/ciphers"
)

// CipherExecutionService defines methods for running block cipher operations
// and recording their metadata.
type CipherExecutionService interface {
	// Encrypt runs the selected cipher in the encryption direction on a block
	// and key given as binary strings.
	// It returns the recorded OperationMeta and any error encountered during execution.
	Encrypt(ctx context.Context, userID, algorithm, block, key string) (*OperationMeta, error)

	// Decrypt runs the selected cipher in the decryption direction on a block
	// and key given as binary strings.
	// It returns the recorded OperationMeta and any error encountered during execution.
	Decrypt(ctx context.Context, userID, algorithm, block, key string) (*OperationMeta, error)

	// ListAlgorithms describes the available cipher constructions.
	ListAlgorithms(ctx context.Context) ([]ciphers.Description, error)
}

// OperationMetadataService defines methods for managing recorded operation metadata.
type OperationMetadataService interface {
	// List retrieves recorded operations considering a query filter when set.
	// It returns a slice of OperationMeta and any error encountered during the retrieval process.
	List(ctx context.Context, query *OperationQuery) ([]*OperationMeta, error)

	// GetByID retrieves a recorded operation by its unique ID.
	// It returns the OperationMeta and any error encountered during the retrieval process.
	GetByID(ctx context.Context, operationID string) (*OperationMeta, error)

	// DeleteByID deletes a recorded operation by ID.
	// It returns any error encountered during the deletion process.
	DeleteByID(ctx context.Context, operationID string) error
}

// OperationRepository defines the interface for operation-record persistence
type OperationRepository interface {
	Create(ctx context.Context, operation *OperationMeta) error
	List(ctx context.Context, query *OperationQuery) ([]*OperationMeta, error)
	GetByID(ctx context.Context, operationID string) (*OperationMeta, error)
	DeleteByID(ctx context.Context, operationID string) error
}
