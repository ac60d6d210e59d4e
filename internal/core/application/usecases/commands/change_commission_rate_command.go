package commands

import (
	"errors"

	"deliveryescrow/internal/core/domain/model/commission"
	"deliveryescrow/internal/core/domain/model/kernel"
	"deliveryescrow/internal/pkg/guard"
)

var ErrChangeCommissionRateCommandIsNotConstructed = errors.New(
	"ChangeCommissionRateCommand must be created via NewChangeCommissionRateCommand constructor",
)

// ChangeCommissionRateCommand represents the owner setting a new commission
// rate. The change applies to deliveries created afterwards; existing
// deliveries keep their snapshot.
type ChangeCommissionRateCommand struct { //nolint:recvcheck //using for validation
	caller kernel.Account
	rate   commission.Rate

	guard guard.ConstructorGuard
}

// NewChangeCommissionRateCommand creates a command for a commission rate change.
func NewChangeCommissionRateCommand(caller kernel.Account, rate commission.Rate) (ChangeCommissionRateCommand, error) {
	if err := errors.Join(caller.Validate(), rate.Validate()); err != nil {
		return ChangeCommissionRateCommand{}, err
	}

	return ChangeCommissionRateCommand{
		caller: caller,
		rate:   rate,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeCommissionRateCommand) Validate() error {
	return c.guard.Validate(ErrChangeCommissionRateCommandIsNotConstructed)
}

// Caller returns the account issuing the command.
func (c ChangeCommissionRateCommand) Caller() kernel.Account { return c.caller }

// Rate returns the new commission rate.
func (c ChangeCommissionRateCommand) Rate() commission.Rate { return c.rate }
