package commands

import (
	"errors"

	"deliveryescrow/internal/core/domain/model/kernel"
	"deliveryescrow/internal/pkg/guard"
)

var ErrSignReceiptCommandIsNotConstructed = errors.New(
	"SignReceiptCommand must be created via NewSignReceiptCommand constructor",
)

// SignReceiptCommand represents the receiver confirming arrival of the
// package. Only the delivery's receiver may issue it.
type SignReceiptCommand struct { //nolint:recvcheck //using for validation
	hash   kernel.DeliveryHash
	caller kernel.Account

	guard guard.ConstructorGuard
}

// NewSignReceiptCommand creates a command for signing a delivery receipt.
func NewSignReceiptCommand(hash kernel.DeliveryHash, caller kernel.Account) (SignReceiptCommand, error) {
	if err := errors.Join(hash.Validate(), caller.Validate()); err != nil {
		return SignReceiptCommand{}, err
	}

	return SignReceiptCommand{
		hash:   hash,
		caller: caller,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SignReceiptCommand) Validate() error {
	return c.guard.Validate(ErrSignReceiptCommandIsNotConstructed)
}

// Hash returns the target delivery identifier.
func (c SignReceiptCommand) Hash() kernel.DeliveryHash { return c.hash }

// Caller returns the account issuing the command.
func (c SignReceiptCommand) Caller() kernel.Account { return c.caller }
