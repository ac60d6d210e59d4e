package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used for classification with errors.Is.
// Every concrete error type in this package unwraps to exactly one of these.
var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsRequired     = errors.New("value is required")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidState        = errors.New("invalid state")
	ErrDepositMismatch     = errors.New("deposit mismatch")
	ErrDuplicateIdentifier = errors.New("duplicate identifier")
	ErrInsufficientFunds   = errors.New("insufficient funds")
)

// sanitize flattens multi-line values so error messages stay single-line
// in logs and HTTP payloads.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ObjectNotFoundError indicates a read against an identifier that was never created.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an
// underlying cause, typically a storage-level error.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates a value that is present but malformed or
// violates a domain rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError with the rule
// violation attached as the cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError indicates a missing required value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError with a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsOutOfRangeError indicates a value outside its permitted bounds,
// including dense-index reads past the end of the delivery sequence.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError with a cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// UnauthorizedError indicates the caller lacks the role required for an action,
// e.g. a non-sender invoking the deadline check.
type UnauthorizedError struct {
	Reason string
	Cause  error
}

// NewUnauthorizedError creates an UnauthorizedError with a human-readable reason.
func NewUnauthorizedError(reason string) *UnauthorizedError {
	return &UnauthorizedError{Reason: reason}
}

// NewUnauthorizedErrorWithCause creates an UnauthorizedError with a cause.
func NewUnauthorizedErrorWithCause(reason string, cause error) *UnauthorizedError {
	return &UnauthorizedError{Reason: reason, Cause: cause}
}

func (e *UnauthorizedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrUnauthorized, e.Reason, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrUnauthorized, e.Reason))
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// InvalidStateError indicates the current lifecycle state does not permit the
// requested transition.
type InvalidStateError struct {
	Action string
	State  string
	Cause  error
}

// NewInvalidStateError creates an InvalidStateError describing the rejected
// action and the state the record was found in.
func NewInvalidStateError(action, state string) *InvalidStateError {
	return &InvalidStateError{Action: action, State: state}
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: cannot %s while %s (cause: %s)",
			ErrInvalidState, e.Action, e.State, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: cannot %s while %s", ErrInvalidState, e.Action, e.State))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// DepositMismatchError indicates an attached value that does not exactly equal
// the required amount. Exact matching is deliberate: over-deposits would strand
// value in custody.
type DepositMismatchError struct {
	Required any
	Attached any
}

// NewDepositMismatchError creates a DepositMismatchError.
func NewDepositMismatchError(required, attached any) *DepositMismatchError {
	return &DepositMismatchError{Required: required, Attached: attached}
}

func (e *DepositMismatchError) Error() string {
	return sanitize(fmt.Sprintf("%s: attached %v does not equal required %v",
		ErrDepositMismatch, e.Attached, e.Required))
}

func (e *DepositMismatchError) Unwrap() error {
	return ErrDepositMismatch
}

// DuplicateIdentifierError indicates a creation collision on a derived identifier.
type DuplicateIdentifierError struct {
	ID    any
	Cause error
}

// NewDuplicateIdentifierError creates a DuplicateIdentifierError.
func NewDuplicateIdentifierError(id any) *DuplicateIdentifierError {
	return &DuplicateIdentifierError{ID: id}
}

// NewDuplicateIdentifierErrorWithCause creates a DuplicateIdentifierError wrapping
// the storage-level uniqueness violation.
func NewDuplicateIdentifierErrorWithCause(id any, cause error) *DuplicateIdentifierError {
	return &DuplicateIdentifierError{ID: id, Cause: cause}
}

func (e *DuplicateIdentifierError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v (cause: %s)", ErrDuplicateIdentifier, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v", ErrDuplicateIdentifier, e.ID))
}

func (e *DuplicateIdentifierError) Unwrap() error {
	return ErrDuplicateIdentifier
}

// InsufficientFundsError indicates a ledger account cannot cover a transfer.
type InsufficientFundsError struct {
	Account   string
	Requested any
	Available any
}

// NewInsufficientFundsError creates an InsufficientFundsError.
func NewInsufficientFundsError(account string, requested, available any) *InsufficientFundsError {
	return &InsufficientFundsError{Account: account, Requested: requested, Available: available}
}

func (e *InsufficientFundsError) Error() string {
	return sanitize(fmt.Sprintf("%s: account %s has %v, requested %v",
		ErrInsufficientFunds, e.Account, e.Available, e.Requested))
}

func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}
