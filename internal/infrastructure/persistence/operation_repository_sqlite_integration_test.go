//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/arya2004/cybersecurity/internal/domain/ciphers"
	"github.com/arya2004/cybersecurity/internal/domain/operations"
	"github.com/arya2004/cybersecurity/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormOperationRepository_Create_Sqlite(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	userID := uuid.NewString()

	t.Run("persists a valid record", func(t *testing.T) {
		operation := CreateTestOperation(t, userID)

		err := ctx.OperationRepo.Create(context.Background(), operation)
		require.NoError(t, err)

		fetched, err := ctx.OperationRepo.GetByID(context.Background(), operation.ID)
		require.NoError(t, err)
		assert.Equal(t, operation.ID, fetched.ID)
		assert.Equal(t, operation.Algorithm, fetched.Algorithm)
		assert.Equal(t, operation.Input, fetched.Input)
		assert.Equal(t, operation.Output, fetched.Output)
		assert.Equal(t, operation.KeyFingerprint, fetched.KeyFingerprint)
	})

	t.Run("rejects an invalid record", func(t *testing.T) {
		operation := CreateTestOperation(t, userID)
		operation.Algorithm = "des"

		err := ctx.OperationRepo.Create(context.Background(), operation)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation error")
	})

	t.Run("rejects a duplicate id", func(t *testing.T) {
		operation := CreateTestOperation(t, userID)

		require.NoError(t, ctx.OperationRepo.Create(context.Background(), operation))
		err := ctx.OperationRepo.Create(context.Background(), operation)
		require.Error(t, err)
	})
}

func TestGormOperationRepository_List_Sqlite(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	userID := uuid.NewString()

	feistelEncrypt := CreateTestOperation(t, userID)
	feistelDecrypt := CreateTestOperationWithOptions(t, userID,
		ciphers.AlgorithmFeistel8, ciphers.OperationDecrypt, TestFeistelOutput, TestFeistelInput)
	spnEncrypt := CreateTestOperationWithOptions(t, userID,
		ciphers.AlgorithmSPN16, ciphers.OperationEncrypt, TestSPNInput, TestSPNOutput)

	for _, operation := range []*operations.OperationMeta{feistelEncrypt, feistelDecrypt, spnEncrypt} {
		require.NoError(t, ctx.OperationRepo.Create(context.Background(), operation))
	}

	t.Run("lists all records with defaults", func(t *testing.T) {
		query := operations.NewOperationQuery()

		list, err := ctx.OperationRepo.List(context.Background(), query)
		require.NoError(t, err)
		assert.Len(t, list, 3)
	})

	t.Run("filters by algorithm", func(t *testing.T) {
		query := operations.NewOperationQuery()
		query.Algorithm = ciphers.AlgorithmFeistel8

		list, err := ctx.OperationRepo.List(context.Background(), query)
		require.NoError(t, err)
		require.Len(t, list, 2)
		for _, operation := range list {
			assert.Equal(t, ciphers.AlgorithmFeistel8, operation.Algorithm)
		}
	})

	t.Run("filters by operation", func(t *testing.T) {
		query := operations.NewOperationQuery()
		query.Operation = ciphers.OperationDecrypt

		list, err := ctx.OperationRepo.List(context.Background(), query)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, feistelDecrypt.ID, list[0].ID)
	})

	t.Run("filters by creation time", func(t *testing.T) {
		query := operations.NewOperationQuery()
		query.DateTimeCreated = time.Now().Add(time.Hour)

		list, err := ctx.OperationRepo.List(context.Background(), query)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		query := operations.NewOperationQuery()
		query.Limit = 2

		firstPage, err := ctx.OperationRepo.List(context.Background(), query)
		require.NoError(t, err)
		assert.Len(t, firstPage, 2)

		query.Offset = 2
		secondPage, err := ctx.OperationRepo.List(context.Background(), query)
		require.NoError(t, err)
		assert.Len(t, secondPage, 1)
	})

	t.Run("sorts by algorithm descending", func(t *testing.T) {
		query := operations.NewOperationQuery()
		query.SortBy = "algorithm"
		query.SortOrder = "desc"

		list, err := ctx.OperationRepo.List(context.Background(), query)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, ciphers.AlgorithmSPN16, list[0].Algorithm)
	})

	t.Run("rejects an invalid query", func(t *testing.T) {
		query := operations.NewOperationQuery()
		query.SortBy = "key_fingerprint"

		list, err := ctx.OperationRepo.List(context.Background(), query)
		require.Error(t, err)
		assert.Nil(t, list)
	})
}

func TestGormOperationRepository_GetByID_Sqlite(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	t.Run("returns not found for unknown id", func(t *testing.T) {
		fetched, err := ctx.OperationRepo.GetByID(context.Background(), uuid.NewString())
		require.Error(t, err)
		assert.Nil(t, fetched)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestGormOperationRepository_DeleteByID_Sqlite(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	userID := uuid.NewString()

	operation := CreateTestOperation(t, userID)
	require.NoError(t, ctx.OperationRepo.Create(context.Background(), operation))

	err := ctx.OperationRepo.DeleteByID(context.Background(), operation.ID)
	require.NoError(t, err)

	fetched, err := ctx.OperationRepo.GetByID(context.Background(), operation.ID)
	require.Error(t, err)
	assert.Nil(t, fetched)
}
