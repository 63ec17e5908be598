package app

import (
	"context"
	"fmt"

	"github.com/arya2004/cybersecurity/internal/domain/operations"
	"github.com/arya2004/cybersecurity/internal/pkg/logger"
)

// operationMetadataService implements the OperationMetadataService interface
// for managing recorded cipher operations
type operationMetadataService struct {
	operationRepo operations.OperationRepository
	logger        logger.Logger
}

// NewOperationMetadataService creates a new operationMetadataService instance
func NewOperationMetadataService(operationRepo operations.OperationRepository, logger logger.Logger) (operations.OperationMetadataService, error) {
	return &operationMetadataService{
		operationRepo: operationRepo,
		logger:        logger,
	}, nil
}

// List retrieves recorded operations considering the query filter when set.
// It returns a slice of OperationMeta and any error encountered during the retrieval process.
func (s *operationMetadataService) List(ctx context.Context, query *operations.OperationQuery) ([]*operations.OperationMeta, error) {
	operationMetas, err := s.operationRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return operationMetas, nil
}

// GetByID retrieves a recorded operation by its unique ID.
// It returns the OperationMeta and any error encountered during the retrieval process.
func (s *operationMetadataService) GetByID(ctx context.Context, operationID string) (*operations.OperationMeta, error) {
	operationMeta, err := s.operationRepo.GetByID(ctx, operationID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return operationMeta, nil
}

// DeleteByID deletes a recorded operation by ID.
// It returns any error encountered during the deletion process.
func (s *operationMetadataService) DeleteByID(ctx context.Context, operationID string) error {
	if err := s.operationRepo.DeleteByID(ctx, operationID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
