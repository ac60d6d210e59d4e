package services

import (
	"context"
	"errors"

	"deliveryescrow/internal/core/domain/model/delivery"
	"deliveryescrow/internal/core/domain/model/kernel"
)

// ErrCourierNotAssigned is returned when a settlement is requested for a
// delivery that never gained a courier. The state machine makes this
// unreachable through the public operations; it guards direct misuse.
var ErrCourierNotAssigned = errors.New("delivery has no courier assigned")

// FundMover moves value between ledger accounts. The escrow ledger repository
// satisfies it; the narrow interface keeps the domain service free of
// persistence concerns.
type FundMover interface {
	// Transfer atomically debits from and credits to by amount.
	Transfer(ctx context.Context, from, to kernel.Account, amount kernel.Money) error
}

// EscrowSettler is the domain service that executes the fund movements each
// delivery transition requires. It owns the two privileged accounts of the
// system: the custody account where staked deposits and funded rewards are
// held, and the owner account that collects commission.
//
// Every method runs against the ledger bound to the caller's unit of work, so
// the transfers commit or roll back together with the state transition that
// caused them. Conservation holds by construction: for every delivery, what
// enters custody through HoldCaution and HoldReward leaves it in full through
// exactly one of PayoutOnReceipt or ForfeitOnOvertime.
type EscrowSettler struct {
	custody kernel.Account
	owner   kernel.Account
}

// NewEscrowSettler creates the settlement service for the given custody and
// commission-recipient accounts.
func NewEscrowSettler(custody, owner kernel.Account) (EscrowSettler, error) {
	if err := errors.Join(custody.Validate(), owner.Validate()); err != nil {
		return EscrowSettler{}, err
	}
	return EscrowSettler{custody: custody, owner: owner}, nil
}

// Custody returns the custody account.
func (s EscrowSettler) Custody() kernel.Account {
	return s.custody
}

// Owner returns the commission recipient account.
func (s EscrowSettler) Owner() kernel.Account {
	return s.owner
}

// HoldCaution takes the courier's caution deposit into custody when the
// courier applies.
func (s EscrowSettler) HoldCaution(ctx context.Context, ledger FundMover, courier kernel.Account, d *delivery.Delivery) error {
	return ledger.Transfer(ctx, courier, s.custody, d.CautionAmount())
}

// HoldReward takes the sender's reward into custody when the delivery starts.
func (s EscrowSettler) HoldReward(ctx context.Context, ledger FundMover, d *delivery.Delivery) error {
	return ledger.Transfer(ctx, d.Sender(), s.custody, d.Reward())
}

// PayoutOnReceipt disburses a successful delivery: commission to the owner,
// the remaining reward to the courier, and the caution deposit refunded to the
// courier. The three amounts drain exactly what custody holds for the delivery.
func (s EscrowSettler) PayoutOnReceipt(ctx context.Context, ledger FundMover, d *delivery.Delivery) error {
	courier := d.Courier()
	if courier == nil {
		return ErrCourierNotAssigned
	}

	if err := ledger.Transfer(ctx, s.custody, s.owner, d.Commission()); err != nil {
		return err
	}
	if err := ledger.Transfer(ctx, s.custody, *courier, d.CourierPayout()); err != nil {
		return err
	}
	return ledger.Transfer(ctx, s.custody, *courier, d.CautionAmount())
}

// ForfeitOnOvertime disburses a late delivery: the sender recovers the reward
// and receives the courier's forfeited caution deposit; the courier gets
// nothing.
func (s EscrowSettler) ForfeitOnOvertime(ctx context.Context, ledger FundMover, d *delivery.Delivery) error {
	total, err := d.Reward().Add(d.CautionAmount())
	if err != nil {
		return err
	}
	return ledger.Transfer(ctx, s.custody, d.Sender(), total)
}
