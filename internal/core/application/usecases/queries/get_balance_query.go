package queries

import (
	"errors"

	"deliveryescrow/internal/core/domain/model/kernel"
	"deliveryescrow/internal/pkg/guard"
)

var ErrGetBalanceQueryIsNotConstructed = errors.New(
	"GetBalanceQuery must be created via NewGetBalanceQuery constructor",
)

// GetBalanceQuery reads the ledger balance of one account.
type GetBalanceQuery struct {
	account kernel.Account

	guard guard.ConstructorGuard
}

// NewGetBalanceQuery creates a balance query.
func NewGetBalanceQuery(account kernel.Account) (GetBalanceQuery, error) {
	if err := account.Validate(); err != nil {
		return GetBalanceQuery{}, err
	}
	return GetBalanceQuery{account: account, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBalanceQuery) Validate() error {
	return q.guard.Validate(ErrGetBalanceQueryIsNotConstructed)
}

// Account returns the account whose balance is requested.
func (q GetBalanceQuery) Account() kernel.Account { return q.account }
