package queries

import (
	"context"

	"gorm.io/gorm"
)

// DoesDeliveryExistQueryHandler checks delivery existence in the database.
type DoesDeliveryExistQueryHandler struct {
	db *gorm.DB
}

// NewDoesDeliveryExistQueryHandler creates a handler for existence checks.
func NewDoesDeliveryExistQueryHandler(db *gorm.DB) DoesDeliveryExistQueryHandler {
	return DoesDeliveryExistQueryHandler{db: db}
}

// Handle executes the existence check.
func (h DoesDeliveryExistQueryHandler) Handle(ctx context.Context, query DoesDeliveryExistQuery) (bool, error) {
	if err := query.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM deliveries WHERE hash = ?
	`, query.Hash().Bytes()).Scan(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}
