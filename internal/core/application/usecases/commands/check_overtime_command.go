package commands

import (
	"errors"

	"deliveryescrow/internal/core/domain/model/kernel"
	"deliveryescrow/internal/pkg/guard"
)

var ErrCheckOvertimeCommandIsNotConstructed = errors.New(
	"CheckOvertimeCommand must be created via NewCheckOvertimeCommand constructor",
)

// CheckOvertimeCommand represents the sender probing whether a started
// delivery has run past its deadline. Only the delivery's creator may
// issue it.
type CheckOvertimeCommand struct { //nolint:recvcheck //using for validation
	hash   kernel.DeliveryHash
	caller kernel.Account

	guard guard.ConstructorGuard
}

// NewCheckOvertimeCommand creates a command for an overtime check.
func NewCheckOvertimeCommand(hash kernel.DeliveryHash, caller kernel.Account) (CheckOvertimeCommand, error) {
	if err := errors.Join(hash.Validate(), caller.Validate()); err != nil {
		return CheckOvertimeCommand{}, err
	}

	return CheckOvertimeCommand{
		hash:   hash,
		caller: caller,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckOvertimeCommand) Validate() error {
	return c.guard.Validate(ErrCheckOvertimeCommandIsNotConstructed)
}

// Hash returns the target delivery identifier.
func (c CheckOvertimeCommand) Hash() kernel.DeliveryHash { return c.hash }

// Caller returns the account issuing the command.
func (c CheckOvertimeCommand) Caller() kernel.Account { return c.caller }
