package v1

import (
	"github.com/arya2004/cybersecurity/internal/domain/operations"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	cipherExecutionService operations.CipherExecutionService,
	operationMetadataService operations.OperationMetadataService) {

	v1 := r.Group(BasePath) // lookup in version file

	// Cipher Routes
	cipherHandler := NewCipherHandler(cipherExecutionService)
	v1.POST("/operations/encrypt", cipherHandler.Encrypt)
	v1.POST("/operations/decrypt", cipherHandler.Decrypt)
	v1.GET("/algorithms", cipherHandler.ListAlgorithms)

	// Operation Records Routes
	operationHandler := NewOperationHandler(operationMetadataService)
	v1.GET("/operations", operationHandler.ListMetadata)
	v1.GET("/operations/:id", operationHandler.GetMetadataByID)
	v1.DELETE("/operations/:id", operationHandler.DeleteByID)
}
