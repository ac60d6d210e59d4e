package queries

import (
	"errors"

	"deliveryescrow/internal/core/domain/model/kernel"
	"deliveryescrow/internal/pkg/guard"
)

var (
	ErrGetCommissionRateQueryIsNotConstructed = errors.New(
		"GetCommissionRateQuery must be created via NewGetCommissionRateQuery constructor",
	)
	ErrGetCommissionRateForDeliveryQueryIsNotConstructed = errors.New(
		"GetCommissionRateForDeliveryQuery must be created via NewGetCommissionRateForDeliveryQuery constructor",
	)
)

// GetCommissionRateQuery reads the live commission policy: the rate the next
// created delivery will snapshot.
type GetCommissionRateQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCommissionRateQuery creates a live rate query.
func NewGetCommissionRateQuery() GetCommissionRateQuery {
	return GetCommissionRateQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCommissionRateQuery) Validate() error {
	return q.guard.Validate(ErrGetCommissionRateQueryIsNotConstructed)
}

// GetCommissionRateForDeliveryQuery reads the rate snapshot frozen on one
// delivery at creation, which may differ from the live policy.
type GetCommissionRateForDeliveryQuery struct {
	hash kernel.DeliveryHash

	guard guard.ConstructorGuard
}

// NewGetCommissionRateForDeliveryQuery creates a snapshot rate query.
func NewGetCommissionRateForDeliveryQuery(hash kernel.DeliveryHash) (GetCommissionRateForDeliveryQuery, error) {
	if err := hash.Validate(); err != nil {
		return GetCommissionRateForDeliveryQuery{}, err
	}
	return GetCommissionRateForDeliveryQuery{hash: hash, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCommissionRateForDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetCommissionRateForDeliveryQueryIsNotConstructed)
}

// Hash returns the delivery whose snapshot is requested.
func (q GetCommissionRateForDeliveryQuery) Hash() kernel.DeliveryHash { return q.hash }
