// Package guard provides a defensive programming pattern that ensures commands
// and domain objects are only created through their designated constructor
// functions. Embedding a ConstructorGuard in a struct makes zero-value
// instances detectable, so validation can reject objects that bypassed
// construction-time checks.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by Validate
// when no specific error is provided for a non-constructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having passed through its constructor.
// The zero value is "not constructed" and fails validation.
//
// Example usage:
//
//	type CreateBookingCommand struct {
//	    // fields...
//	    guard guard.ConstructorGuard
//	}
//
//	func NewCreateBookingCommand(...) (CreateBookingCommand, error) {
//	    cmd := CreateBookingCommand{guard: guard.NewConstructorGuard()}
//	    // validate and set fields...
//	    return cmd, nil
//	}
//
//	func (c CreateBookingCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateBookingCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for properly constructed objects. For zero-value
// guards it returns validationError, or ErrDefaultConstructorGuard when
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
