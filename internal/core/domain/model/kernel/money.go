package kernel

import (
	"fmt"
	"strconv"

	"deliveryescrow/internal/pkg/errs"
)

// Money is a non-negative amount of the ledger's native unit.
//
// Amounts are plain unsigned integers: rewards, caution deposits, commissions,
// and ledger balances are all expressed in the same unit, and settlement math
// uses truncating integer arithmetic. Money is a value object; arithmetic
// returns new values and subtraction is underflow-checked so a balance can
// never silently go negative.
type Money struct {
	units uint64
}

// NewMoney creates an amount of the given number of units.
// Zero is a valid amount: nothing forbids a free delivery or a delivery
// without a caution deposit, so the registry stays permissive about both.
func NewMoney(units uint64) Money {
	return Money{units: units}
}

// Zero returns the zero amount.
func Zero() Money {
	return Money{}
}

// Units returns the raw amount.
func (m Money) Units() uint64 {
	return m.units
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.units == 0
}

// Equals reports whether two amounts are exactly equal. Deposit checks use
// exact equality, never "at least".
func (m Money) Equals(other Money) bool {
	return m.units == other.units
}

// Less reports whether m is strictly smaller than other.
func (m Money) Less(other Money) bool {
	return m.units < other.units
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) (Money, error) {
	sum := m.units + other.units
	if sum < m.units {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money",
			fmt.Errorf("amount overflow adding %d to %d", other.units, m.units),
		)
	}
	return Money{units: sum}, nil
}

// Sub returns m minus other, failing if the result would be negative.
func (m Money) Sub(other Money) (Money, error) {
	if other.units > m.units {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money",
			fmt.Errorf("cannot subtract %d from %d", other.units, m.units),
		)
	}
	return Money{units: m.units - other.units}, nil
}

// String renders the raw unit count.
func (m Money) String() string {
	return strconv.FormatUint(m.units, 10)
}
