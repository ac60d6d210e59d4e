// Package services contains stateless domain services that coordinate behavior
// across the delivery aggregate and the escrow ledger.
//
// The EscrowSettler translates lifecycle transitions into balanced ledger
// transfers. It is the only place that knows the custody and owner accounts;
// aggregates describe what a settlement is worth, the settler moves the value.
package services
