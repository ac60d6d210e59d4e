package commands

import (
	"errors"

	"deliveryescrow/internal/core/domain/model/kernel"
	"deliveryescrow/internal/core/domain/model/party"
	"deliveryescrow/internal/pkg/guard"
)

var ErrApplyToDeliveryCommandIsNotConstructed = errors.New(
	"ApplyToDeliveryCommand must be created via NewApplyToDeliveryCommand constructor",
)

// ApplyToDeliveryCommand represents a courier staking the caution deposit to
// accept a pending delivery. The attached amount is the value the courier
// commits to the call; it must equal the delivery's caution amount exactly.
type ApplyToDeliveryCommand struct { //nolint:recvcheck //using for validation
	hash     kernel.DeliveryHash
	courier  kernel.Account
	contact  party.Contact
	attached kernel.Money

	guard guard.ConstructorGuard
}

// NewApplyToDeliveryCommand creates a command for a courier application.
func NewApplyToDeliveryCommand(
	hash kernel.DeliveryHash,
	courier kernel.Account,
	contact party.Contact,
	attached kernel.Money,
) (ApplyToDeliveryCommand, error) {
	if err := errors.Join(hash.Validate(), courier.Validate(), contact.Validate()); err != nil {
		return ApplyToDeliveryCommand{}, err
	}

	return ApplyToDeliveryCommand{
		hash:     hash,
		courier:  courier,
		contact:  contact,
		attached: attached,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyToDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrApplyToDeliveryCommandIsNotConstructed)
}

// Hash returns the target delivery identifier.
func (c ApplyToDeliveryCommand) Hash() kernel.DeliveryHash { return c.hash }

// Courier returns the applying account.
func (c ApplyToDeliveryCommand) Courier() kernel.Account { return c.courier }

// Contact returns the courier's directory record.
func (c ApplyToDeliveryCommand) Contact() party.Contact { return c.contact }

// Attached returns the value the courier attached to the application.
func (c ApplyToDeliveryCommand) Attached() kernel.Money { return c.attached }
