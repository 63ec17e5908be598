package v1

import (
	"fmt"
	"net/http"

	"github.com/arya2004/cybersecurity/internal/domain/operations"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CipherHandler defines the interface for handling cipher execution requests
type CipherHandler interface {
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
	ListAlgorithms(ctx *gin.Context)
}

// CipherHandler struct holds the services
type cipherHandler struct {
	cipherExecutionService operations.CipherExecutionService
}

// NewCipherHandler creates a new CipherHandler
func NewCipherHandler(cipherExecutionService operations.CipherExecutionService) CipherHandler {
	return &cipherHandler{
		cipherExecutionService: cipherExecutionService,
	}
}

// Encrypt handles the POST request to run a cipher in the encryption direction
// @Summary Encrypt a block under a key
// @Description Run the selected cipher in the encryption direction on a binary block and key and record the operation.
// @Tags Cipher
// @Accept json
// @Produce json
// @Param requestBody body CipherRequest true "Cipher Execution Data"
// @Success 201 {object} OperationResponse
// @Failure 400 {object} ErrorResponse
// @Router /operations/encrypt [post]
func (handler *cipherHandler) Encrypt(ctx *gin.Context) {

	var request CipherRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid cipher data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(400, errorResponse)
		return
	}

	userID := uuid.New().String() // TODO(arya2004): extract user id from JWT

	operationMeta, err := handler.cipherExecutionService.Encrypt(ctx, userID, request.Algorithm, request.Block, request.Key)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error running encryption: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	operationResponse := OperationResponse{
		ID:              operationMeta.ID,
		Algorithm:       operationMeta.Algorithm,
		Operation:       operationMeta.Operation,
		Input:           operationMeta.Input,
		Output:          operationMeta.Output,
		KeyFingerprint:  operationMeta.KeyFingerprint,
		DateTimeCreated: operationMeta.DateTimeCreated,
		UserID:          operationMeta.UserID,
	}

	ctx.JSON(http.StatusCreated, operationResponse)
}

// Decrypt handles the POST request to run a cipher in the decryption direction
// @Summary Decrypt a block under a key
// @Description Run the selected cipher in the decryption direction on a binary block and key and record the operation.
// @Tags Cipher
// @Accept json
// @Produce json
// @Param requestBody body CipherRequest true "Cipher Execution Data"
// @Success 201 {object} OperationResponse
// @Failure 400 {object} ErrorResponse
// @Router /operations/decrypt [post]
func (handler *cipherHandler) Decrypt(ctx *gin.Context) {

	var request CipherRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid cipher data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(400, errorResponse)
		return
	}

	userID := uuid.New().String() // TODO(arya2004): extract user id from JWT

	operationMeta, err := handler.cipherExecutionService.Decrypt(ctx, userID, request.Algorithm, request.Block, request.Key)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error running decryption: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	operationResponse := OperationResponse{
		ID:              operationMeta.ID,
		Algorithm:       operationMeta.Algorithm,
		Operation:       operationMeta.Operation,
		Input:           operationMeta.Input,
		Output:          operationMeta.Output,
		KeyFingerprint:  operationMeta.KeyFingerprint,
		DateTimeCreated: operationMeta.DateTimeCreated,
		UserID:          operationMeta.UserID,
	}

	ctx.JSON(http.StatusCreated, operationResponse)
}

// ListAlgorithms handles the GET request to list the available cipher constructions
// @Summary List available cipher algorithms
// @Description Fetch the descriptors of the available cipher constructions including block width, key width and round key count.
// @Tags Cipher
// @Accept json
// @Produce json
// @Success 200 {array} AlgorithmResponse
// @Failure 400 {object} ErrorResponse
// @Router /algorithms [get]
func (handler *cipherHandler) ListAlgorithms(ctx *gin.Context) {
	descriptions, err := handler.cipherExecutionService.ListAlgorithms(ctx)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error listing algorithms: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	var listResponse = []AlgorithmResponse{}
	for _, description := range descriptions {
		algorithmResponse := AlgorithmResponse{
			Algorithm:     description.Algorithm,
			BlockSize:     description.BlockSize,
			KeySize:       description.KeySize,
			RoundKeyCount: description.RoundKeyCount,
		}
		listResponse = append(listResponse, algorithmResponse)
	}

	ctx.JSON(http.StatusOK, listResponse)
}
