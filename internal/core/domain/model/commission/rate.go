// Package commission holds the commission-rate value object shared by the
// policy service and the delivery aggregate's per-delivery snapshot.
package commission

import (
	"deliveryescrow/internal/core/domain/model/kernel"
	"deliveryescrow/internal/pkg/errs"
)

const (
	// MinRate is the lowest valid commission percentage.
	MinRate = 0
	// MaxRate is the highest valid commission percentage.
	MaxRate = 100
	// DefaultRate is the rate a fresh deployment starts with before the owner
	// changes it.
	DefaultRate = Rate(10)
)

// Rate is the owner-set commission percentage applied to a delivery's reward
// at settlement. Every delivery captures the rate current at its creation time
// as an immutable snapshot, so a later rate change never alters the economics
// of an existing delivery.
type Rate int

// NewRate validates and returns a commission rate.
func NewRate(value int) (Rate, error) {
	r := Rate(value)
	if err := r.Validate(); err != nil {
		return 0, err
	}
	return r, nil
}

// Validate checks the rate lies within the permitted percentage range.
func (r Rate) Validate() error {
	if r < MinRate || r > MaxRate {
		return errs.NewValueIsOutOfRangeError("commission rate", int(r), MinRate, MaxRate)
	}
	return nil
}

// Int returns the raw percentage.
func (r Rate) Int() int {
	return int(r)
}

// Apply computes the commission owed on a reward with truncating integer
// arithmetic: reward * rate / 100. Splitting the reward into whole hundreds
// and a remainder keeps the intermediate products within uint64 for any
// reward, while yielding the same truncated quotient as the direct form.
func (r Rate) Apply(reward kernel.Money) kernel.Money {
	whole := reward.Units() / 100 * uint64(r)
	part := reward.Units() % 100 * uint64(r) / 100
	return kernel.NewMoney(whole + part)
}
