package kernel

import (
	"fmt"

	"deliveryescrow/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrAccountIsNotConstructed indicates an Account that was not initialized through
// one of the constructor functions. Returned when validating a zero-value Account.
var ErrAccountIsNotConstructed = errs.NewValueIsRequiredError(
	"Account must be created via NewAccount, AccountFromString, or AccountFromBytes")

// Account is a value object identifying a party in the delivery system: the
// sender, the receiver, a courier, or the process owner who collects commission.
//
// The execution environment authenticates callers and supplies their Account;
// the domain only compares Accounts against the role fields stored on a
// Delivery. It wraps github.com/google/uuid to stay immutable and comparable.
//
// The zero value is invalid and must be constructed via NewAccount,
// AccountFromString, or AccountFromBytes.
type Account struct {
	id uuid.UUID
}

// NewAccount generates a new random account identifier.
// Used when provisioning parties that do not exist yet, mostly in tests and seeds.
func NewAccount() Account {
	return Account{id: uuid.New()}
}

// AccountFromString parses an account identifier from its string form.
// This is the path every authenticated principal takes when it enters the
// system from the transport layer.
func AccountFromString(s string) (Account, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return Account{}, fmt.Errorf("invalid account format: %w", err)
	}
	account := Account{id: id}
	if err = account.Validate(); err != nil {
		return Account{}, err
	}
	return account, nil
}

// AccountFromBytes creates an Account from a 16-byte slice, typically when
// reconstructing records from persistence.
func AccountFromBytes(b []byte) (Account, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return Account{}, fmt.Errorf("invalid account format: %w", err)
	}
	account := Account{id: id}
	if err = account.Validate(); err != nil {
		return Account{}, err
	}
	return account, nil
}

// String returns the canonical textual form of the account identifier.
func (a Account) String() string {
	return a.id.String()
}

// Bytes returns the underlying uuid.UUID for persistence mapping.
func (a Account) Bytes() uuid.UUID {
	return a.id
}

// IsEqual reports whether two accounts identify the same party.
// Role checks on delivery transitions reduce to this comparison.
func (a Account) IsEqual(other Account) bool {
	return a.id == other.id
}

// Validate returns ErrAccountIsNotConstructed for a zero-value Account.
func (a Account) Validate() error {
	if a.id == uuid.Nil {
		return ErrAccountIsNotConstructed
	}
	return nil
}
