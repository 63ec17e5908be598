package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/arya2004/cybersecurity/internal/domain/operations"
	"github.com/arya2004/cybersecurity/internal/infrastructure/persistence/models"
	"github.com/arya2004/cybersecurity/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormOperationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormOperationRepository creates a new GORM-based OperationRepository implementation
func NewGormOperationRepository(db *gorm.DB, logger logger.Logger) (operations.OperationRepository, error) {
	return &gormOperationRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormOperationRepository) Create(ctx context.Context, operation *operations.OperationMeta) error {
	if err := operation.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.OperationModel{}
	model.FromDomain(operation)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create operation record: %w", err)
	}

	r.logger.Info("Created operation record with id ", operation.ID)
	return nil
}

func (r *gormOperationRepository) List(ctx context.Context, query *operations.OperationQuery) ([]*operations.OperationMeta, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.OperationModel
	dbQuery := r.db.WithContext(ctx).Model(&models.OperationModel{})

	if query.Algorithm != "" {
		dbQuery = dbQuery.Where("algorithm = ?", query.Algorithm)
	}
	if query.Operation != "" {
		dbQuery = dbQuery.Where("operation = ?", query.Operation)
	}
	if !query.DateTimeCreated.IsZero() {
		dbQuery = dbQuery.Where("date_time_created >= ?", query.DateTimeCreated)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch operation records: %w", err)
	}

	domainList := make([]*operations.OperationMeta, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormOperationRepository) GetByID(ctx context.Context, operationID string) (*operations.OperationMeta, error) {
	var model models.OperationModel
	if err := r.db.WithContext(ctx).Where("id = ?", operationID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("operation record with ID %s not found", operationID)
		}
		return nil, fmt.Errorf("failed to fetch operation record: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormOperationRepository) DeleteByID(ctx context.Context, operationID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", operationID).Delete(&models.OperationModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete operation record: %w", err)
	}

	r.logger.Info("Deleted operation record with id ", operationID)
	return nil
}
