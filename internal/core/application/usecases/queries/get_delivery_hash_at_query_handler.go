package queries

import (
	"context"
	"database/sql"
	"errors"

	"deliveryescrow/internal/core/domain/model/kernel"
	"deliveryescrow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDeliveryHashAtQueryHandler resolves enumeration indexes against the
// insertion-ordered sequence column of the registry.
type GetDeliveryHashAtQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryHashAtQueryHandler creates a handler for enumeration lookups.
func NewGetDeliveryHashAtQueryHandler(db *gorm.DB) GetDeliveryHashAtQueryHandler {
	return GetDeliveryHashAtQueryHandler{db: db}
}

// Handle executes the lookup. An index past the end of the registry fails
// with a ValueIsOutOfRangeError.
func (h GetDeliveryHashAtQueryHandler) Handle(ctx context.Context, query GetDeliveryHashAtQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	var raw []byte
	row := h.db.WithContext(ctx).Raw(`
		SELECT hash FROM deliveries ORDER BY seq LIMIT 1 OFFSET ?
	`, query.Index()).Row()

	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			var count int64
			if countErr := h.db.WithContext(ctx).Raw(`
				SELECT COUNT(*) FROM deliveries
			`).Scan(&count).Error; countErr != nil {
				return "", countErr
			}
			return "", errs.NewValueIsOutOfRangeError("index", query.Index(), 0, count-1)
		}
		return "", err
	}

	hash, err := kernel.DeliveryHashFromBytes(raw)
	if err != nil {
		return "", err
	}

	return hash.String(), nil
}
