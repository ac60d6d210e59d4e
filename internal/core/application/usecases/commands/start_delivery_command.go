package commands

import (
	"errors"

	"deliveryescrow/internal/core/domain/model/kernel"
	"deliveryescrow/internal/pkg/guard"
)

var ErrStartDeliveryCommandIsNotConstructed = errors.New(
	"StartDeliveryCommand must be created via NewStartDeliveryCommand constructor",
)

// StartDeliveryCommand represents the sender handing the package to the
// assigned courier and funding the reward escrow. Only the delivery's
// creator may issue it; the attached amount must equal the reward exactly.
type StartDeliveryCommand struct { //nolint:recvcheck //using for validation
	hash     kernel.DeliveryHash
	caller   kernel.Account
	attached kernel.Money

	guard guard.ConstructorGuard
}

// NewStartDeliveryCommand creates a command for starting a delivery.
func NewStartDeliveryCommand(
	hash kernel.DeliveryHash,
	caller kernel.Account,
	attached kernel.Money,
) (StartDeliveryCommand, error) {
	if err := errors.Join(hash.Validate(), caller.Validate()); err != nil {
		return StartDeliveryCommand{}, err
	}

	return StartDeliveryCommand{
		hash:     hash,
		caller:   caller,
		attached: attached,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrStartDeliveryCommandIsNotConstructed)
}

// Hash returns the target delivery identifier.
func (c StartDeliveryCommand) Hash() kernel.DeliveryHash { return c.hash }

// Caller returns the account issuing the command.
func (c StartDeliveryCommand) Caller() kernel.Account { return c.caller }

// Attached returns the value the caller attached to the start call.
func (c StartDeliveryCommand) Attached() kernel.Money { return c.attached }
