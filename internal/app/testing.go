//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/arya2004/cybersecurity/internal/domain/operations"
	"github.com/arya2004/cybersecurity/internal/infrastructure/cryptography"
	"github.com/arya2004/cybersecurity/internal/infrastructure/persistence"
	"github.com/arya2004/cybersecurity/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	CipherExecutionService   operations.CipherExecutionService
	OperationMetadataService operations.OperationMetadataService

	// Infrastructure
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)

	// Setup database
	dbContext := persistence.SetupTestDB(t, dbType)

	// Setup cipher processors
	feistelProcessor, err := cryptography.NewFeistelProcessor(cryptography.DefaultFeistelParams(), logger)
	require.NoError(t, err, "Failed to create feistel8 processor")

	spnProcessor, err := cryptography.NewSPNProcessor(cryptography.DefaultSPNParams(), logger)
	require.NoError(t, err, "Failed to create spn16 processor")

	// Initialize application services
	cipherExecutionService, err := NewCipherExecutionService(feistelProcessor, spnProcessor, dbContext.OperationRepo, logger)
	require.NoError(t, err, "Failed to create CipherExecutionService")

	operationMetadataService, err := NewOperationMetadataService(dbContext.OperationRepo, logger)
	require.NoError(t, err, "Failed to create OperationMetadataService")

	return &TestServices{
		CipherExecutionService:   cipherExecutionService,
		OperationMetadataService: operationMetadataService,
		DBContext:                dbContext,
	}
}
