//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/arya2004/cybersecurity/internal/domain/ciphers"
	"github.com/arya2004/cybersecurity/internal/domain/operations"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCipherHandler_Encrypt_Success(t *testing.T) {
	mockExecutionService := new(MockCipherExecutionService)

	handler := NewCipherHandler(mockExecutionService)

	operationMeta := &operations.OperationMeta{
		ID:              "op-123",
		Algorithm:       "feistel8",
		Operation:       "encrypt",
		Input:           "10111101",
		Output:          "01110101",
		KeyFingerprint:  "9fb7b24b6574a583",
		DateTimeCreated: time.Now(),
		UserID:          "user-1",
	}

	requestBody := `{"algorithm": "feistel8", "block": "10111101", "key": "1010000010"}`

	mockExecutionService.
		On("Encrypt", mock.Anything, mock.AnythingOfType("string"), "feistel8", "10111101", "1010000010").
		Return(operationMeta, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/operations/encrypt", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Encrypt(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "op-123")
	assert.Contains(t, w.Body.String(), "01110101")
	mockExecutionService.AssertExpectations(t)
}

func TestCipherHandler_Encrypt_InvalidJSON(t *testing.T) {
	mockExecutionService := new(MockCipherExecutionService)

	handler := NewCipherHandler(mockExecutionService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/operations/encrypt", bytes.NewBufferString("not json"))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Encrypt(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockExecutionService.AssertNotCalled(t, "Encrypt")
}

func TestCipherHandler_Encrypt_ValidationError(t *testing.T) {
	mockExecutionService := new(MockCipherExecutionService)

	handler := NewCipherHandler(mockExecutionService)

	requestBody := `{"algorithm": "des", "block": "10111101", "key": "1010000010"}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/operations/encrypt", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Encrypt(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation failed")
	mockExecutionService.AssertNotCalled(t, "Encrypt")
}

func TestCipherHandler_Encrypt_NonBinaryBlock(t *testing.T) {
	mockExecutionService := new(MockCipherExecutionService)

	handler := NewCipherHandler(mockExecutionService)

	requestBody := `{"algorithm": "feistel8", "block": "1011a101", "key": "1010000010"}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/operations/encrypt", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Encrypt(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation failed")
	mockExecutionService.AssertNotCalled(t, "Encrypt")
}

func TestCipherHandler_Encrypt_ServiceError(t *testing.T) {
	mockExecutionService := new(MockCipherExecutionService)

	handler := NewCipherHandler(mockExecutionService)

	requestBody := `{"algorithm": "feistel8", "block": "10111101", "key": "1010000010"}`

	mockExecutionService.
		On("Encrypt", mock.Anything, mock.AnythingOfType("string"), "feistel8", "10111101", "1010000010").
		Return(nil, errors.New("failed to create operation record"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/operations/encrypt", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Encrypt(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error running encryption")
	mockExecutionService.AssertExpectations(t)
}

func TestCipherHandler_Decrypt_Success(t *testing.T) {
	mockExecutionService := new(MockCipherExecutionService)

	handler := NewCipherHandler(mockExecutionService)

	operationMeta := &operations.OperationMeta{
		ID:              "op-456",
		Algorithm:       "spn16",
		Operation:       "decrypt",
		Input:           "0010010011101100",
		Output:          "1101011100101000",
		KeyFingerprint:  "0e1f2a3b4c5d6e7f",
		DateTimeCreated: time.Now(),
		UserID:          "user-1",
	}

	requestBody := `{"algorithm": "spn16", "block": "0010010011101100", "key": "0100101011110101"}`

	mockExecutionService.
		On("Decrypt", mock.Anything, mock.AnythingOfType("string"), "spn16", "0010010011101100", "0100101011110101").
		Return(operationMeta, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/operations/decrypt", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Decrypt(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "op-456")
	assert.Contains(t, w.Body.String(), "1101011100101000")
	mockExecutionService.AssertExpectations(t)
}

func TestCipherHandler_Decrypt_ServiceError(t *testing.T) {
	mockExecutionService := new(MockCipherExecutionService)

	handler := NewCipherHandler(mockExecutionService)

	requestBody := `{"algorithm": "spn16", "block": "0010010011101100", "key": "0100101011110101"}`

	mockExecutionService.
		On("Decrypt", mock.Anything, mock.AnythingOfType("string"), "spn16", "0010010011101100", "0100101011110101").
		Return(nil, errors.New("storage unavailable"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/operations/decrypt", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Decrypt(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error running decryption")
	mockExecutionService.AssertExpectations(t)
}

func TestCipherHandler_ListAlgorithms_Success(t *testing.T) {
	mockExecutionService := new(MockCipherExecutionService)

	handler := NewCipherHandler(mockExecutionService)

	descriptions := []ciphers.Description{
		{Algorithm: "feistel8", BlockSize: 8, KeySize: 10, RoundKeyCount: 2},
		{Algorithm: "spn16", BlockSize: 16, KeySize: 16, RoundKeyCount: 3},
	}

	mockExecutionService.
		On("ListAlgorithms", mock.Anything).
		Return(descriptions, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/algorithms", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.ListAlgorithms(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "feistel8")
	assert.Contains(t, w.Body.String(), "spn16")
	mockExecutionService.AssertExpectations(t)
}

func TestCipherHandler_ListAlgorithms_Error(t *testing.T) {
	mockExecutionService := new(MockCipherExecutionService)

	handler := NewCipherHandler(mockExecutionService)

	mockExecutionService.
		On("ListAlgorithms", mock.Anything).
		Return(nil, errors.New("listing failed"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/algorithms", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.ListAlgorithms(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockExecutionService.AssertExpectations(t)
}
