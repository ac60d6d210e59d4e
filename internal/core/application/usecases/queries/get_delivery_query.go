// Package queries contains read-only operations over the system state.
// Queries bypass the domain model and read the database directly, which is
// the read side of the CQRS split: no locks, no unit of work, plain SQL.
package queries

import (
	"errors"
	"time"

	"deliveryescrow/internal/core/domain/model/kernel"
	"deliveryescrow/internal/pkg/guard"
)

var ErrGetDeliveryQueryIsNotConstructed = errors.New(
	"GetDeliveryQuery must be created via NewGetDeliveryQuery constructor",
)

// GetDeliveryQuery retrieves the full public record of one delivery.
type GetDeliveryQuery struct {
	hash kernel.DeliveryHash

	guard guard.ConstructorGuard
}

// NewGetDeliveryQuery creates a query for a single delivery record.
func NewGetDeliveryQuery(hash kernel.DeliveryHash) (GetDeliveryQuery, error) {
	if err := hash.Validate(); err != nil {
		return GetDeliveryQuery{}, err
	}
	return GetDeliveryQuery{hash: hash, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

// Hash returns the requested delivery identifier.
func (q GetDeliveryQuery) Hash() kernel.DeliveryHash { return q.hash }

// GetDeliveryQueryResponse is the read model of a delivery. Courier is empty
// until someone applies; StartTime and EndTime are zero until the respective
// transition happens. Commission and CourierPayout are derived from the
// stored rate snapshot, not from the current policy.
type GetDeliveryQueryResponse struct {
	Hash           string
	Sender         string
	Receiver       string
	Courier        string
	FromAddress    string
	ToAddress      string
	Reward         uint64
	CautionAmount  uint64
	Deadline       time.Time
	StartTime      time.Time
	EndTime        time.Time
	CommissionRate int
	Commission     uint64
	CourierPayout  uint64
	State          string
}
