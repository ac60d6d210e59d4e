// Package delivery contains the Delivery aggregate root, its lifecycle state
// machine, and the notifications emitted by committed transitions.
//
// The aggregate is the single authority on who may cause which transition and
// what attached value each transition requires. Escrow fund movements are
// derived from the aggregate (Commission, CourierPayout, CautionAmount) and
// executed by the settlement domain service within the same unit of work, so
// under adversarial and interleaved calls from three mutually untrusting
// parties funds are never lost, double-paid, or released to the wrong party.
package delivery
