package ports

import (
	"context"

	"deliveryescrow/internal/core/domain/model/kernel"
)

// LedgerRepository is the escrow ledger: one balance per account, including
// the custody and owner accounts. All mutations happen inside the unit of work
// of the transition that caused them, which is what makes a transition and its
// fund movement atomic as a pair.
type LedgerRepository interface {
	// Balance returns the current balance of an account. An account that never
	// received funds has a zero balance; that is not an error.
	Balance(ctx context.Context, account kernel.Account) (kernel.Money, error)

	// Credit adds funds to an account, creating its row on first use.
	// This is how external value enters the system.
	Credit(ctx context.Context, account kernel.Account, amount kernel.Money) error

	// Transfer atomically debits from and credits to. Fails with an
	// InsufficientFundsError when the source balance cannot cover the amount,
	// leaving both balances untouched.
	Transfer(ctx context.Context, from, to kernel.Account, amount kernel.Money) error
}
