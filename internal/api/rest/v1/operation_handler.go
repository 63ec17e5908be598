package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/arya2004/cybersecurity/internal/domain/operations"
	"github.com/arya2004/cybersecurity/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// OperationHandler defines the interface for handling recorded operation queries
type OperationHandler interface {
	ListMetadata(ctx *gin.Context)
	GetMetadataByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// OperationHandler struct holds the services
type operationHandler struct {
	operationMetadataService operations.OperationMetadataService
}

// NewOperationHandler creates a new OperationHandler
func NewOperationHandler(operationMetadataService operations.OperationMetadataService) OperationHandler {
	return &operationHandler{
		operationMetadataService: operationMetadataService,
	}
}

// ListMetadata handles the GET request to list recorded operations with optional query parameters
// @Summary List recorded cipher operations based on query parameters
// @Description Fetch a list of recorded cipher operations based on filters like algorithm, operation and creation date, with pagination and sorting options.
// @Tags Operation
// @Accept json
// @Produce json
// @Param algorithm query string false "Cipher Algorithm"
// @Param operation query string false "Operation Direction (encrypt/decrypt)"
// @Param dateTimeCreated query string false "Operation Creation Date (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} OperationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /operations [get]
func (handler *operationHandler) ListMetadata(ctx *gin.Context) {
	query := operations.NewOperationQuery()

	if algorithm := ctx.Query("algorithm"); len(algorithm) > 0 {
		query.Algorithm = algorithm
	}

	if operation := ctx.Query("operation"); len(operation) > 0 {
		query.Operation = operation
	}

	if dateTimeCreated := ctx.Query("dateTimeCreated"); len(dateTimeCreated) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, dateTimeCreated)
		if err == nil {
			query.DateTimeCreated = parsedTime
		}
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = strutil.ConvertToInt(limit)
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = strutil.ConvertToInt(offset)
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(400, errorResponse)
		return
	}

	operationMetas, err := handler.operationMetadataService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var listResponse = []OperationResponse{}
	for _, operationMeta := range operationMetas {
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
		listResponse = append(listResponse, operationResponse)
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetMetadataByID handles the GET request to retrieve a recorded operation by ID
// @Summary Retrieve a recorded cipher operation by ID
// @Description Fetch a recorded cipher operation by ID, including input, output and key fingerprint.
// @Tags Operation
// @Accept json
// @Produce json
// @Param id path string true "Operation ID"
// @Success 200 {object} OperationResponse
// @Failure 404 {object} ErrorResponse
// @Router /operations/{id} [get]
func (handler *operationHandler) GetMetadataByID(ctx *gin.Context) {
	operationID := ctx.Param("id")

	operationMeta, err := handler.operationMetadataService.GetByID(ctx, operationID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("operation with id %s not found", operationID)
		ctx.JSON(http.StatusNotFound, errorResponse)
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

	ctx.JSON(http.StatusOK, operationResponse)
}

// DeleteByID handles the DELETE request to delete a recorded operation by ID
// @Summary Delete a recorded cipher operation by ID
// @Description Delete a specific recorded cipher operation by ID.
// @Tags Operation
// @Accept json
// @Produce json
// @Param id path string true "Operation ID"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /operations/{id} [delete]
func (handler *operationHandler) DeleteByID(ctx *gin.Context) {
	operationID := ctx.Param("id")

	if err := handler.operationMetadataService.DeleteByID(ctx, operationID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error deleting operation with id %s", operationID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = fmt.Sprintf("deleted operation with id %s", operationID)
	ctx.JSON(http.StatusNoContent, infoResponse)
}
