// Package kernel contains the shared value objects of the escrow delivery domain:
// party accounts, delivery hashes, and money amounts.
//
// All types in this package are immutable value objects constructed through
// factory functions that enforce their invariants. Zero values are invalid and
// detectable via Validate, which lets aggregates and commands reject
// improperly initialized identifiers before any state or funds move.
package kernel
