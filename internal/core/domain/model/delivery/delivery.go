package delivery

import (
	"errors"
	"time"

	"deliveryescrow/internal/core/domain/model/commission"
	"deliveryescrow/internal/core/domain/model/kernel"
	"deliveryescrow/internal/pkg/errs"
	"deliveryescrow/internal/pkg/guard"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
	// created through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

	// ErrFromAddressIsRequired is returned when creating a delivery without a pickup address.
	ErrFromAddressIsRequired = errs.NewValueIsRequiredError("fromAddress")
	// ErrToAddressIsRequired is returned when creating a delivery without a destination address.
	ErrToAddressIsRequired = errs.NewValueIsRequiredError("toAddress")
	// ErrDeadlineNotInFuture is returned when a delivery's deadline does not lie
	// strictly after its creation time.
	ErrDeadlineNotInFuture = errs.NewValueIsInvalidError("deadline must be after creation time")
)

// Authorization failure reasons, kept close to the wording the parties see.
const (
	reasonOnlySender   = "only the creator of the delivery can perform this action"
	reasonOnlyReceiver = "only the receiver of the delivery can perform this action"
)

// Delivery is the aggregate root tracking one sender-to-receiver shipment and
// its escrow state. It owns the lifecycle state machine and validates every
// transition: who may trigger it, which state permits it, and what attached
// value it requires. The escrow fund movements that accompany a transition are
// decided here and executed by the settlement service inside the same unit of
// work, so state and money always move together or not at all.
//
// Invariants:
//   - state only moves forward along the defined edges
//   - courier is nil until exactly one successful application
//   - commission rate snapshot is fixed at creation and never changes,
//     regardless of later owner policy changes
//   - reward, caution amount, addresses, and deadline are immutable after creation
type Delivery struct {
	hash     kernel.DeliveryHash
	sender   kernel.Account
	receiver kernel.Account
	// courier is nil until a courier stakes the caution deposit
	courier *kernel.Account

	fromAddress string
	toAddress   string

	reward        kernel.Money
	cautionAmount kernel.Money

	deadline  time.Time
	startTime time.Time
	endTime   time.Time

	// rateSnapshot is the commission rate captured at creation time
	rateSnapshot commission.Rate

	state State

	guard guard.ConstructorGuard
}

// NewDelivery registers a new delivery in Pending state.
//
// The deadline must lie strictly after createdAt. The source system left this
// unchecked; it is enforced here because a delivery born overdue can only be
// settled by forfeiture, which no sender can intend. Zero reward and zero
// caution remain allowed for source compatibility.
func NewDelivery(
	hash kernel.DeliveryHash,
	sender kernel.Account,
	receiver kernel.Account,
	fromAddress string,
	toAddress string,
	reward kernel.Money,
	cautionAmount kernel.Money,
	deadline time.Time,
	rateSnapshot commission.Rate,
	createdAt time.Time,
) (*Delivery, error) {
	if err := errors.Join(
		hash.Validate(),
		sender.Validate(),
		receiver.Validate(),
		rateSnapshot.Validate(),
	); err != nil {
		return nil, err
	}

	if fromAddress == "" {
		return nil, ErrFromAddressIsRequired
	}
	if toAddress == "" {
		return nil, ErrToAddressIsRequired
	}
	if !deadline.After(createdAt) {
		return nil, ErrDeadlineNotInFuture
	}

	return &Delivery{
		hash:          hash,
		sender:        sender,
		receiver:      receiver,
		fromAddress:   fromAddress,
		toAddress:     toAddress,
		reward:        reward,
		cautionAmount: cautionAmount,
		deadline:      deadline,
		rateSnapshot:  rateSnapshot,
		state:         Pending,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// RestoreDelivery reconstructs a delivery from persistence without re-running
// creation-time checks. The stored state must still be a valid lifecycle state.
func RestoreDelivery(
	hash kernel.DeliveryHash,
	sender kernel.Account,
	receiver kernel.Account,
	courier *kernel.Account,
	fromAddress string,
	toAddress string,
	reward kernel.Money,
	cautionAmount kernel.Money,
	deadline time.Time,
	startTime time.Time,
	endTime time.Time,
	rateSnapshot commission.Rate,
	state State,
) (*Delivery, error) {
	if err := errors.Join(
		hash.Validate(),
		sender.Validate(),
		receiver.Validate(),
		rateSnapshot.Validate(),
		state.Validate(),
	); err != nil {
		return nil, err
	}

	if courier != nil {
		if err := courier.Validate(); err != nil {
			return nil, err
		}
	}

	return &Delivery{
		hash:          hash,
		sender:        sender,
		receiver:      receiver,
		courier:       courier,
		fromAddress:   fromAddress,
		toAddress:     toAddress,
		reward:        reward,
		cautionAmount: cautionAmount,
		deadline:      deadline,
		startTime:     startTime,
		endTime:       endTime,
		rateSnapshot:  rateSnapshot,
		state:         state,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Delivery was created through a constructor.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// Hash returns the delivery's unique identifier.
func (d *Delivery) Hash() kernel.DeliveryHash { return d.hash }

// Sender returns the account that created the delivery and funds the reward.
func (d *Delivery) Sender() kernel.Account { return d.sender }

// Receiver returns the account whose signature settles the delivery.
func (d *Delivery) Receiver() kernel.Account { return d.receiver }

// Courier returns the accepted courier's account, or nil before acceptance.
func (d *Delivery) Courier() *kernel.Account { return d.courier }

// FromAddress returns the pickup address.
func (d *Delivery) FromAddress() string { return d.fromAddress }

// ToAddress returns the destination address.
func (d *Delivery) ToAddress() string { return d.toAddress }

// Reward returns the amount the sender pays for a successful delivery.
func (d *Delivery) Reward() kernel.Money { return d.reward }

// CautionAmount returns the courier's required security deposit.
func (d *Delivery) CautionAmount() kernel.Money { return d.cautionAmount }

// Deadline returns the absolute timestamp the delivery must beat.
func (d *Delivery) Deadline() time.Time { return d.deadline }

// StartTime returns when the delivery started, zero until then.
func (d *Delivery) StartTime() time.Time { return d.startTime }

// EndTime returns when the delivery settled, zero until then.
func (d *Delivery) EndTime() time.Time { return d.endTime }

// CommissionRate returns the rate snapshot taken at creation time.
func (d *Delivery) CommissionRate() commission.Rate { return d.rateSnapshot }

// State returns the current lifecycle state.
func (d *Delivery) State() State { return d.state }

// Commission returns the owner's cut of the reward computed from the creation
// snapshot, not the live policy rate.
func (d *Delivery) Commission() kernel.Money {
	return d.rateSnapshot.Apply(d.reward)
}

// CourierPayout returns the reward minus commission. Together with Commission
// it always sums back to exactly the reward.
func (d *Delivery) CourierPayout() kernel.Money {
	payout, err := d.reward.Sub(d.Commission())
	if err != nil {
		// Commission is a fraction of the reward, so this cannot underflow.
		return kernel.Zero()
	}
	return payout
}

// Apply records a courier staking the caution deposit.
//
// The attached value must equal the caution amount exactly; "at least" would
// strand the overage in custody. Only valid while Pending, which guarantees a
// second applicant is rejected with the courier field untouched.
func (d *Delivery) Apply(courier kernel.Account, attached kernel.Money) error {
	if err := courier.Validate(); err != nil {
		return err
	}

	newState, err := d.state.Apply()
	if err != nil {
		return err
	}

	if !attached.Equals(d.cautionAmount) {
		return errs.NewDepositMismatchError(d.cautionAmount, attached)
	}

	d.courier = &courier
	d.state = newState
	return nil
}

// Start records the sender funding the reward and the delivery getting under way.
//
// Only the sender may start, only from AwaitingPickup, and the attached value
// must equal the reward exactly.
func (d *Delivery) Start(caller kernel.Account, attached kernel.Money, now time.Time) error {
	if !caller.IsEqual(d.sender) {
		return errs.NewUnauthorizedError(reasonOnlySender)
	}

	newState, err := d.state.Start()
	if err != nil {
		return err
	}

	if !attached.Equals(d.reward) {
		return errs.NewDepositMismatchError(d.reward, attached)
	}

	d.startTime = now
	d.state = newState
	return nil
}

// SignReceipt records the receiver confirming delivery, moving the record to
// its successful terminal state. The commission split and deposit refund are
// derived from Commission and CourierPayout by the settlement service.
func (d *Delivery) SignReceipt(caller kernel.Account, now time.Time) error {
	if !caller.IsEqual(d.receiver) {
		return errs.NewUnauthorizedError(reasonOnlyReceiver)
	}

	newState, err := d.state.End()
	if err != nil {
		return err
	}

	d.endTime = now
	d.state = newState
	return nil
}

// CheckOvertime is the sender's pull mechanism for realizing lateness.
//
// If now is past the deadline the delivery moves to EndedOvertime and the
// caller is told isOnTime=false; the accompanying forfeiture moves reward and
// caution back to the sender. At or before the deadline nothing changes and
// isOnTime=true is reported. now == deadline counts as on time.
func (d *Delivery) CheckOvertime(caller kernel.Account, now time.Time) (isOnTime bool, err error) {
	if !caller.IsEqual(d.sender) {
		return false, errs.NewUnauthorizedError(reasonOnlySender)
	}

	if d.state != Started {
		return false, errs.NewInvalidStateError("check overtime", d.state.String())
	}

	if !now.After(d.deadline) {
		return true, nil
	}

	newState, err := d.state.EndOvertime()
	if err != nil {
		return false, err
	}

	d.endTime = now
	d.state = newState
	return false, nil
}
