package app

import (
	"context"
	"fmt"
	"time"

	"github.com/arya2004/cybersecurity/internal/domain/ciphers"
	"github.com/arya2004/cybersecurity/internal/domain/operations"
	"github.com/arya2004/cybersecurity/internal/pkg/bitvec"
	"github.com/arya2004/cybersecurity/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/zeebo/xxh3"
)

// cipherExecutionService implements the CipherExecutionService interface for
// running block cipher operations and recording their metadata
type cipherExecutionService struct {
	feistelProcessor ciphers.BlockCipherProcessor
	spnProcessor     ciphers.BlockCipherProcessor
	operationRepo    operations.OperationRepository
	logger           logger.Logger
}

// NewCipherExecutionService creates a new cipherExecutionService instance
func NewCipherExecutionService(feistelProcessor, spnProcessor ciphers.BlockCipherProcessor, operationRepo operations.OperationRepository, logger logger.Logger) (operations.CipherExecutionService, error) {
	return &cipherExecutionService{
		feistelProcessor: feistelProcessor,
		spnProcessor:     spnProcessor,
		operationRepo:    operationRepo,
		logger:           logger,
	}, nil
}

// Encrypt runs the selected cipher in the encryption direction on a block and
// key given as binary strings, records the outcome and returns the metadata.
// It returns the recorded OperationMeta and any error encountered during execution.
func (s *cipherExecutionService) Encrypt(ctx context.Context, userID, algorithm, block, key string) (*operations.OperationMeta, error) {
	return s.execute(ctx, userID, algorithm, ciphers.OperationEncrypt, block, key)
}

// Decrypt runs the selected cipher in the decryption direction on a block and
// key given as binary strings, records the outcome and returns the metadata.
// It returns the recorded OperationMeta and any error encountered during execution.
func (s *cipherExecutionService) Decrypt(ctx context.Context, userID, algorithm, block, key string) (*operations.OperationMeta, error) {
	return s.execute(ctx, userID, algorithm, ciphers.OperationDecrypt, block, key)
}

// ListAlgorithms describes the available cipher constructions
func (s *cipherExecutionService) ListAlgorithms(_ context.Context) ([]ciphers.Description, error) {
	descriptions := make([]ciphers.Description, 0, 2)
	for _, processor := range []ciphers.BlockCipherProcessor{s.feistelProcessor, s.spnProcessor} {
		descriptions = append(descriptions, ciphers.Description{
			Algorithm:     processor.Algorithm(),
			BlockSize:     processor.BlockSize(),
			KeySize:       processor.KeySize(),
			RoundKeyCount: processor.RoundKeyCount(),
		})
	}
	return descriptions, nil
}

func (s *cipherExecutionService) execute(ctx context.Context, userID, algorithm, operation, block, key string) (*operations.OperationMeta, error) {
	processor, err := s.processorFor(algorithm)
	if err != nil {
		return nil, err
	}

	blockVector, err := bitvec.Parse(block)
	if err != nil {
		return nil, fmt.Errorf("invalid block: %w", err)
	}

	keyVector, err := bitvec.Parse(key)
	if err != nil {
		return nil, fmt.Errorf("invalid key: %w", err)
	}

	var output bitvec.BitVector
	switch operation {
	case ciphers.OperationEncrypt:
		output, err = processor.Encrypt(blockVector, keyVector)
	case ciphers.OperationDecrypt:
		output, err = processor.Decrypt(blockVector, keyVector)
	default:
		return nil, fmt.Errorf("unsupported operation: %s", operation)
	}
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	operationMeta := &operations.OperationMeta{
		ID:              uuid.New().String(),
		Algorithm:       algorithm,
		Operation:       operation,
		Input:           blockVector.String(),
		Output:          output.String(),
		KeyFingerprint:  keyFingerprint(keyVector),
		DateTimeCreated: time.Now(),
		UserID:          userID,
	}

	if err := s.operationRepo.Create(ctx, operationMeta); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return operationMeta, nil
}

func (s *cipherExecutionService) processorFor(algorithm string) (ciphers.BlockCipherProcessor, error) {
	switch algorithm {
	case ciphers.AlgorithmFeistel8:
		return s.feistelProcessor, nil
	case ciphers.AlgorithmSPN16:
		return s.spnProcessor, nil
	default:
		return nil, fmt.Errorf("unsupported algorithm: %s", algorithm)
	}
}

// keyFingerprint digests the key bits for the stored record. Raw key material
// never reaches the repository.
func keyFingerprint(key bitvec.BitVector) string {
	return fmt.Sprintf("%016x", xxh3.HashString(key.String()))
}
