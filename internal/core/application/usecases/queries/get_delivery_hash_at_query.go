package queries

import (
	"errors"

	"deliveryescrow/internal/pkg/errs"
	"deliveryescrow/internal/pkg/guard"
)

var ErrGetDeliveryHashAtQueryIsNotConstructed = errors.New(
	"GetDeliveryHashAtQuery must be created via NewGetDeliveryHashAtQuery constructor",
)

// GetDeliveryHashAtQuery resolves an enumeration index to a delivery hash.
type GetDeliveryHashAtQuery struct {
	index int64

	guard guard.ConstructorGuard
}

// NewGetDeliveryHashAtQuery creates an enumeration lookup for the given index.
func NewGetDeliveryHashAtQuery(index int64) (GetDeliveryHashAtQuery, error) {
	if index < 0 {
		return GetDeliveryHashAtQuery{}, errs.NewValueIsInvalidError("index")
	}
	return GetDeliveryHashAtQuery{index: index, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryHashAtQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryHashAtQueryIsNotConstructed)
}

// Index returns the requested enumeration index.
func (q GetDeliveryHashAtQuery) Index() int64 { return q.index }
