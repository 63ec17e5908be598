//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/arya2004/cybersecurity/internal/domain/ciphers"
	"github.com/arya2004/cybersecurity/internal/domain/operations"

	"github.com/stretchr/testify/mock"
)

// MockCipherExecutionService is a mock implementation of CipherExecutionService
type MockCipherExecutionService struct {
	mock.Mock
}

func (m *MockCipherExecutionService) Encrypt(ctx context.Context, userID, algorithm, block, key string) (*operations.OperationMeta, error) {
	args := m.Called(ctx, userID, algorithm, block, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*operations.OperationMeta), args.Error(1)
}

func (m *MockCipherExecutionService) Decrypt(ctx context.Context, userID, algorithm, block, key string) (*operations.OperationMeta, error) {
	args := m.Called(ctx, userID, algorithm, block, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*operations.OperationMeta), args.Error(1)
}

func (m *MockCipherExecutionService) ListAlgorithms(ctx context.Context) ([]ciphers.Description, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ciphers.Description), args.Error(1)
}

// MockOperationMetadataService is a mock implementation of OperationMetadataService
type MockOperationMetadataService struct {
	mock.Mock
}

func (m *MockOperationMetadataService) List(ctx context.Context, query *operations.OperationQuery) ([]*operations.OperationMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*operations.OperationMeta), args.Error(1)
}

func (m *MockOperationMetadataService) GetByID(ctx context.Context, operationID string) (*operations.OperationMeta, error) {
	args := m.Called(ctx, operationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*operations.OperationMeta), args.Error(1)
}

func (m *MockOperationMetadataService) DeleteByID(ctx context.Context, operationID string) error {
	args := m.Called(ctx, operationID)
	return args.Error(0)
}
