package queries

import (
	"errors"

	"deliveryescrow/internal/core/domain/model/kernel"
	"deliveryescrow/internal/pkg/guard"
)

var ErrDoesDeliveryExistQueryIsNotConstructed = errors.New(
	"DoesDeliveryExistQuery must be created via NewDoesDeliveryExistQuery constructor",
)

// DoesDeliveryExistQuery checks whether a delivery was ever registered under
// the given hash. Existence is permanent: ended deliveries still exist.
type DoesDeliveryExistQuery struct {
	hash kernel.DeliveryHash

	guard guard.ConstructorGuard
}

// NewDoesDeliveryExistQuery creates an existence check query.
func NewDoesDeliveryExistQuery(hash kernel.DeliveryHash) (DoesDeliveryExistQuery, error) {
	if err := hash.Validate(); err != nil {
		return DoesDeliveryExistQuery{}, err
	}
	return DoesDeliveryExistQuery{hash: hash, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q DoesDeliveryExistQuery) Validate() error {
	return q.guard.Validate(ErrDoesDeliveryExistQueryIsNotConstructed)
}

// Hash returns the delivery identifier to check.
func (q DoesDeliveryExistQuery) Hash() kernel.DeliveryHash { return q.hash }
