package queries

import (
	"errors"

	"deliveryescrow/internal/pkg/guard"
)

var ErrGetDeliveryCountQueryIsNotConstructed = errors.New(
	"GetDeliveryCountQuery must be created via NewGetDeliveryCountQuery constructor",
)

// GetDeliveryCountQuery returns how many deliveries were ever registered.
// Together with GetDeliveryHashAtQuery it forms a dense-index enumeration:
// indexes 0..count-1 each resolve to a hash, and nothing is ever removed.
type GetDeliveryCountQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDeliveryCountQuery creates a registry size query.
func NewGetDeliveryCountQuery() GetDeliveryCountQuery {
	return GetDeliveryCountQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryCountQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryCountQueryIsNotConstructed)
}
