//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/arya2004/cybersecurity/internal/domain/ciphers"
	"github.com/arya2004/cybersecurity/internal/domain/operations"
	"github.com/arya2004/cybersecurity/internal/infrastructure/persistence/models"
	"github.com/arya2004/cybersecurity/internal/pkg/config"
	"github.com/arya2004/cybersecurity/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Fixture values drawn from the pinned cipher test vectors
const (
	TestFeistelInput      = "10111101"
	TestFeistelOutput     = "01110101"
	TestSPNInput          = "1101011100101000"
	TestSPNOutput         = "0010010011101100"
	TestKeyFingerprint    = "9fb7b24b6574a583"
	TestKeyFingerprintAlt = "0e1f2a3b4c5d6e7f"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB            *gorm.DB
	OperationRepo operations.OperationRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	// Create connection
	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	// Register cleanup
	t.Cleanup(func() {
		if err := CloseDB(db); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
		cleanupFunc()
	})

	// Migrate schema
	err = db.AutoMigrate(&models.OperationModel{})
	require.NoError(t, err, "Failed to migrate schema")

	// Create repositories
	logger := testutil.SetupTestLogger(t)

	operationRepo, err := NewGormOperationRepository(db, logger)
	require.NoError(t, err, "Failed to create operation repository")

	return &TestContext{
		DB:            db,
		OperationRepo: operationRepo,
	}
}

// CreateTestOperation creates an operation record fixture with default values
func CreateTestOperation(t *testing.T, userID string) *operations.OperationMeta {
	t.Helper()

	return &operations.OperationMeta{
		ID:              uuid.NewString(),
		Algorithm:       ciphers.AlgorithmFeistel8,
		Operation:       ciphers.OperationEncrypt,
		Input:           TestFeistelInput,
		Output:          TestFeistelOutput,
		KeyFingerprint:  TestKeyFingerprint,
		DateTimeCreated: time.Now(),
		UserID:          userID,
	}
}

// CreateTestOperationWithOptions creates an operation record fixture with custom options
func CreateTestOperationWithOptions(t *testing.T, userID, algorithm, operation, input, output string) *operations.OperationMeta {
	t.Helper()

	return &operations.OperationMeta{
		ID:              uuid.NewString(),
		Algorithm:       algorithm,
		Operation:       operation,
		Input:           input,
		Output:          output,
		KeyFingerprint:  TestKeyFingerprintAlt,
		DateTimeCreated: time.Now(),
		UserID:          userID,
	}
}
