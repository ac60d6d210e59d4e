package queries

import (
	"context"
	"database/sql"
	"errors"

	"deliveryescrow/internal/core/domain/model/commission"
	"deliveryescrow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCommissionRateQueryHandler reads the live commission policy.
type GetCommissionRateQueryHandler struct {
	db *gorm.DB
}

// NewGetCommissionRateQueryHandler creates a handler for live rate queries.
func NewGetCommissionRateQueryHandler(db *gorm.DB) GetCommissionRateQueryHandler {
	return GetCommissionRateQueryHandler{db: db}
}

// Handle executes the query. Before the owner ever sets a rate the policy
// table is empty and the default applies.
func (h GetCommissionRateQueryHandler) Handle(ctx context.Context, query GetCommissionRateQuery) (int, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var rate int
	row := h.db.WithContext(ctx).Raw(`
		SELECT rate FROM commission_policy WHERE id = 1
	`).Row()
	if err := row.Scan(&rate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return commission.DefaultRate.Int(), nil
		}
		return 0, err
	}

	return rate, nil
}

// GetCommissionRateForDeliveryQueryHandler reads a delivery's frozen rate snapshot.
type GetCommissionRateForDeliveryQueryHandler struct {
	db *gorm.DB
}

// NewGetCommissionRateForDeliveryQueryHandler creates a handler for snapshot queries.
func NewGetCommissionRateForDeliveryQueryHandler(db *gorm.DB) GetCommissionRateForDeliveryQueryHandler {
	return GetCommissionRateForDeliveryQueryHandler{db: db}
}

// Handle executes the snapshot query.
func (h GetCommissionRateForDeliveryQueryHandler) Handle(
	ctx context.Context,
	query GetCommissionRateForDeliveryQuery,
) (int, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var rate int
	row := h.db.WithContext(ctx).Raw(`
		SELECT rate_snapshot FROM deliveries WHERE hash = ?
	`, query.Hash().Bytes()).Row()
	if err := row.Scan(&rate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, errs.NewObjectNotFoundError("delivery", query.Hash().String())
		}
		return 0, err
	}

	return rate, nil
}
