// Package guard provides the constructor-guard pattern used by domain value
// objects, entities, and commands to ensure they are only created through
// their designated constructor functions.
//
// By embedding a ConstructorGuard in a struct, zero-value instances can be
// detected and rejected during validation, keeping domain invariants intact.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by Validate when
// a nil validation error is supplied. This ensures that validation always
// fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is a defensive programming pattern that ensures value
// objects and entities are only created through their constructor functions.
// It maintains an internal flag that is only set when the object is created
// through NewConstructorGuard; any zero-value struct fails validation.
//
// Example usage:
//
//	var ErrRateNotConstructed = errors.New("Rate must be created via NewRate")
//
//	type Rate struct {
//	    amount int
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewRate(amount int) (Rate, error) {
//	    if amount <= 0 {
//	        return Rate{}, errors.New("amount must be positive")
//	    }
//	    return Rate{amount: amount, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (r Rate) Validate() error {
//	    return r.guard.Validate(ErrRateNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call this in the constructor of domain objects so they can be
// distinguished from zero-value instances.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// designated constructor. Returns the provided validationError for
// zero-value instances, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
