// Package errs provides standardized error types for the escrow delivery service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package carries the full failure taxonomy of the delivery lifecycle:
//   - UnauthorizedError: caller lacks the role required for the action
//   - InvalidStateError: current lifecycle state does not permit the transition
//   - DepositMismatchError: attached value does not exactly equal the required amount
//   - ObjectNotFoundError: read against an identifier that was never created
//   - ValueIsOutOfRangeError: index or value outside its permitted bounds
//   - DuplicateIdentifierError: creation collision on a derived identifier
//   - InsufficientFundsError: ledger account cannot cover a transfer
//   - ValueIsRequiredError / ValueIsInvalidError: constructor validation failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrInvalidState)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// This standardized approach keeps every rejected call caller-visible and
// distinguishable by category, which the settlement logic depends on: no failure
// is silently swallowed and no partial effect survives a rejection.
package errs
