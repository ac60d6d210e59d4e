// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// fund movement, persistence, and post-commit notification.
package commands

import (
	"context"
	"time"

	"deliveryescrow/internal/core/ports"
)

// Clock supplies the current time to handlers that compare against deadlines
// or stamp start and end times. Injected so tests can fix it.
type Clock func() time.Time

// Unit of Work interfaces provide transaction management for command handlers.
// Each composite names exactly the repositories its handler touches, so a
// handler cannot reach state outside its transaction boundary.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DeliveryRepoFactory provides access to the delivery registry within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// ContactRepoFactory provides access to the contact directory within a transaction.
	ContactRepoFactory interface {
		ContactRepository() ports.ContactRepository
	}

	// LedgerRepoFactory provides access to the escrow ledger within a transaction.
	LedgerRepoFactory interface {
		LedgerRepository() ports.LedgerRepository
	}

	// PolicyRepoFactory provides access to the commission policy within a transaction.
	PolicyRepoFactory interface {
		PolicyRepository() ports.PolicyRepository
	}

	// RegistryUoW manages transactions for delivery creation: the registry
	// record, the sender and receiver contacts, and the policy snapshot read.
	RegistryUoW interface {
		TxManager
		DeliveryRepoFactory
		ContactRepoFactory
		PolicyRepoFactory
	}

	// RegistryUoWFactory creates new registry unit of work instances.
	RegistryUoWFactory interface {
		Create() RegistryUoW
	}

	// EscrowUoW manages transactions that move funds alongside a state
	// transition and touch the contact directory (courier application).
	EscrowUoW interface {
		TxManager
		DeliveryRepoFactory
		ContactRepoFactory
		LedgerRepoFactory
	}

	// EscrowUoWFactory creates new escrow unit of work instances.
	EscrowUoWFactory interface {
		Create() EscrowUoW
	}

	// SettlementUoW manages transactions that move funds alongside a state
	// transition: start, receipt settlement, forfeiture.
	SettlementUoW interface {
		TxManager
		DeliveryRepoFactory
		LedgerRepoFactory
	}

	// SettlementUoWFactory creates new settlement unit of work instances.
	SettlementUoWFactory interface {
		Create() SettlementUoW
	}

	// PolicyUoW manages transactions for owner policy changes.
	PolicyUoW interface {
		TxManager
		PolicyRepoFactory
	}

	// PolicyUoWFactory creates new policy unit of work instances.
	PolicyUoWFactory interface {
		Create() PolicyUoW
	}

	// WalletUoW manages transactions for ledger credits.
	WalletUoW interface {
		TxManager
		LedgerRepoFactory
	}

	// WalletUoWFactory creates new wallet unit of work instances.
	WalletUoWFactory interface {
		Create() WalletUoW
	}
)
