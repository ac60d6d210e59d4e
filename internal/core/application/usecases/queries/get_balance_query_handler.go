package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

// GetBalanceQueryHandler reads ledger balances from the database.
type GetBalanceQueryHandler struct {
	db *gorm.DB
}

// NewGetBalanceQueryHandler creates a handler for balance queries.
func NewGetBalanceQueryHandler(db *gorm.DB) GetBalanceQueryHandler {
	return GetBalanceQueryHandler{db: db}
}

// Handle executes the balance query. An account with no ledger row has a
// zero balance.
func (h GetBalanceQueryHandler) Handle(ctx context.Context, query GetBalanceQuery) (uint64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var balance uint64
	row := h.db.WithContext(ctx).Raw(`
		SELECT balance FROM ledger_balances WHERE account = ?
	`, query.Account().Bytes()).Row()
	if err := row.Scan(&balance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}

	return balance, nil
}
