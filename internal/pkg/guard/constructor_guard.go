// Package guard provides a defensive construction pattern for value objects,
// commands, and entities. Embedding a ConstructorGuard in a struct makes a
// zero-value instance distinguishable from one created through its constructor,
// so validation can reject objects that bypassed their invariant checks.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is passed
// as the validation error, so validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as having been built through its designated
// constructor. The zero value fails validation.
//
// Example usage:
//
//	type SignReceiptCommand struct {
//	    hash  kernel.DeliveryHash
//	    guard guard.ConstructorGuard
//	}
//
//	func NewSignReceiptCommand(hash kernel.DeliveryHash) (SignReceiptCommand, error) {
//	    if err := hash.Validate(); err != nil {
//	        return SignReceiptCommand{}, err
//	    }
//	    return SignReceiptCommand{hash: hash, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c SignReceiptCommand) Validate() error {
//	    return c.guard.Validate(ErrSignReceiptCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as properly
// constructed. Call it in every constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed object. For a zero-value
// guard it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
