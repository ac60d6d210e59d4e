package queries

import (
	"errors"

	"deliveryescrow/internal/core/domain/model/kernel"
	"deliveryescrow/internal/pkg/guard"
)

var ErrGetUserQueryIsNotConstructed = errors.New(
	"GetUserQuery must be created via NewGetUserQuery constructor",
)

// GetUserQuery retrieves the contact record of an account. An account that
// never took part in a delivery resolves to an empty record, not an error.
type GetUserQuery struct {
	account kernel.Account

	guard guard.ConstructorGuard
}

// NewGetUserQuery creates a contact directory lookup.
func NewGetUserQuery(account kernel.Account) (GetUserQuery, error) {
	if err := account.Validate(); err != nil {
		return GetUserQuery{}, err
	}
	return GetUserQuery{account: account, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

// Account returns the account whose record is requested.
func (q GetUserQuery) Account() kernel.Account { return q.account }

// GetUserQueryResponse is the read model of a contact record. All fields are
// empty for accounts without a directory entry.
type GetUserQueryResponse struct {
	Account string
	Name    string
	Phone   string
	Email   string
}
