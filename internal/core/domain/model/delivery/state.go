package delivery

import "deliveryescrow/internal/pkg/errs"

// State represents the lifecycle state of a delivery.
// It implements a state machine with defined transitions so a delivery can only
// move forward along the agreed workflow; no transition regresses or skips.
//
// State transitions:
//
//	Pending --apply--> AwaitingPickup --start--> Started --signReceipt--> Ended
//	                                                │
//	                                                └--checkOvertime(late)--> EndedOvertime
//
// Ended and EndedOvertime are terminal. An on-time checkOvertime leaves the
// delivery in Started.
type State int

const (
	// Unknown is the implicit state of any identifier that was never created.
	// It marks absence, not a real record, and catches uninitialized values.
	Unknown State = iota

	// Pending is the initial state: the delivery is registered and waiting for
	// a courier to stake the caution deposit.
	Pending

	// AwaitingPickup means a courier has staked the deposit and is waiting for
	// the sender to fund the reward.
	AwaitingPickup

	// Started means the reward is in custody and the delivery is under way.
	Started

	// Ended means the receiver signed: commission paid, courier rewarded,
	// deposit refunded. Terminal.
	Ended

	// EndedOvertime means the sender realized a missed deadline: the courier
	// forfeited the deposit and the sender recovered reward plus caution.
	// Terminal.
	EndedOvertime
)

func getStateStrings() map[State]string {
	return map[State]string{
		Unknown:        "Unknown",
		Pending:        "Pending",
		AwaitingPickup: "AwaitingPickup",
		Started:        "Started",
		Ended:          "Ended",
		EndedOvertime:  "EndedOvertime",
	}
}

// Validate checks that the State is one of the real lifecycle states.
// Unknown and any other values are invalid; Unknown never appears on a stored
// record.
func (s State) Validate() error {
	if s < Pending || s > EndedOvertime {
		return errs.NewValueIsInvalidError("state")
	}
	return nil
}

// String returns the human-readable name of the state.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s State) IsTerminal() bool {
	return s == Ended || s == EndedOvertime
}

// Apply transitions the state to AwaitingPickup.
// Only valid from Pending: a second application always finds the state already
// advanced and fails, which is what makes "exactly one courier" hold.
func (s State) Apply() (State, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateError("apply to delivery", s.String())
	}
	return AwaitingPickup, nil
}

// Start transitions the state to Started. Only valid from AwaitingPickup.
func (s State) Start() (State, error) {
	if s != AwaitingPickup {
		return 0, errs.NewInvalidStateError("start delivery", s.String())
	}
	return Started, nil
}

// End transitions the state to Ended. Only valid from Started.
func (s State) End() (State, error) {
	if s != Started {
		return 0, errs.NewInvalidStateError("sign receipt", s.String())
	}
	return Ended, nil
}

// EndOvertime transitions the state to EndedOvertime. Only valid from Started;
// in particular a deadline check before start must fail, never silently no-op.
func (s State) EndOvertime() (State, error) {
	if s != Started {
		return 0, errs.NewInvalidStateError("check overtime", s.String())
	}
	return EndedOvertime, nil
}
