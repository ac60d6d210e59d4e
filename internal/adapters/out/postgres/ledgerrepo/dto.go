// Package ledgerrepo provides the escrow ledger persistence: one balance row
// per account, including the custody and owner accounts.
package ledgerrepo

import (
	"github.com/google/uuid"
)

// BalanceDTO represents the database structure for persisting account balances.
// Balances are unsigned at the domain level; the debit statement refuses to
// take a balance below zero, so the column never holds a negative value.
type BalanceDTO struct {
	Account uuid.UUID `gorm:"type:uuid;primaryKey"`
	Balance uint64
}

// TableName specifies the database table name for balance rows.
func (BalanceDTO) TableName() string {
	return "ledger_balances"
}
