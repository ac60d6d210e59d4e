package commands

import (
	"errors"

	"deliveryescrow/internal/core/domain/model/kernel"
	"deliveryescrow/internal/pkg/errs"
	"deliveryescrow/internal/pkg/guard"
)

var ErrDepositFundsCommandIsNotConstructed = errors.New(
	"DepositFundsCommand must be created via NewDepositFundsCommand constructor",
)

// DepositFundsCommand represents a participant topping up their ledger
// balance ahead of staking a deposit or funding a reward.
type DepositFundsCommand struct { //nolint:recvcheck //using for validation
	account kernel.Account
	amount  kernel.Money

	guard guard.ConstructorGuard
}

// NewDepositFundsCommand creates a command for a ledger deposit.
func NewDepositFundsCommand(account kernel.Account, amount kernel.Money) (DepositFundsCommand, error) {
	if err := account.Validate(); err != nil {
		return DepositFundsCommand{}, err
	}
	if amount.IsZero() {
		return DepositFundsCommand{}, errs.NewValueIsRequiredError("amount")
	}

	return DepositFundsCommand{
		account: account,
		amount:  amount,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DepositFundsCommand) Validate() error {
	return c.guard.Validate(ErrDepositFundsCommandIsNotConstructed)
}

// Account returns the account being credited.
func (c DepositFundsCommand) Account() kernel.Account { return c.account }

// Amount returns the deposit amount.
func (c DepositFundsCommand) Amount() kernel.Money { return c.amount }
