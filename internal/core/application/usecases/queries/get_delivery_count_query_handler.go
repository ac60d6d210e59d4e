package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDeliveryCountQueryHandler counts registered deliveries in the database.
type GetDeliveryCountQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryCountQueryHandler creates a handler for registry size queries.
func NewGetDeliveryCountQueryHandler(db *gorm.DB) GetDeliveryCountQueryHandler {
	return GetDeliveryCountQueryHandler{db: db}
}

// Handle executes the count query.
func (h GetDeliveryCountQueryHandler) Handle(ctx context.Context, query GetDeliveryCountQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	if err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM deliveries
	`).Scan(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
