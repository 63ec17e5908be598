//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/arya2004/cybersecurity/internal/domain/ciphers"
	"github.com/arya2004/cybersecurity/internal/domain/operations"
	"github.com/arya2004/cybersecurity/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requires a local postgres instance; see SetupTestDB for the connection settings.
func TestGormOperationRepository_Postgres(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)
	userID := uuid.NewString()

	t.Run("create and fetch round trip", func(t *testing.T) {
		operation := CreateTestOperation(t, userID)

		err := ctx.OperationRepo.Create(context.Background(), operation)
		require.NoError(t, err)

		fetched, err := ctx.OperationRepo.GetByID(context.Background(), operation.ID)
		require.NoError(t, err)
		assert.Equal(t, operation.ID, fetched.ID)
		assert.Equal(t, operation.KeyFingerprint, fetched.KeyFingerprint)
	})

	t.Run("list filters by algorithm", func(t *testing.T) {
		spnOperation := CreateTestOperationWithOptions(t, userID,
			ciphers.AlgorithmSPN16, ciphers.OperationEncrypt, TestSPNInput, TestSPNOutput)
		require.NoError(t, ctx.OperationRepo.Create(context.Background(), spnOperation))

		query := operations.NewOperationQuery()
		query.Algorithm = ciphers.AlgorithmSPN16

		list, err := ctx.OperationRepo.List(context.Background(), query)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, spnOperation.ID, list[0].ID)
	})

	t.Run("delete removes the record", func(t *testing.T) {
		operation := CreateTestOperation(t, userID)
		require.NoError(t, ctx.OperationRepo.Create(context.Background(), operation))

		require.NoError(t, ctx.OperationRepo.DeleteByID(context.Background(), operation.ID))

		fetched, err := ctx.OperationRepo.GetByID(context.Background(), operation.ID)
		require.Error(t, err)
		assert.Nil(t, fetched)
	})
}
