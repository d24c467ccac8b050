// Package guard provides a defensive-programming primitive that ensures value
// objects, entities, and commands are only created through their designated
// constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was created through its constructor
// or as a zero value. Embedding a ConstructorGuard in a struct and calling
// Validate in its Validate method prevents bypassing constructor validation
// by direct struct initialization.
//
// Example usage:
//
//	var ErrCartNotConstructed = errors.New("Cart must be created via NewCart")
//
//	type Cart struct {
//	    customerID kernel.UUID
//	    guard      guard.ConstructorGuard
//	}
//
//	func NewCart(customerID kernel.UUID) (Cart, error) {
//	    if err := customerID.Validate(); err != nil {
//	        return Cart{}, err
//	    }
//	    return Cart{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c Cart) Validate() error {
//	    return c.guard.Validate(ErrCartNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly constructed.
// This should be called in the constructor of domain objects so they can be
// distinguished from zero-value instances.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed guard. For a zero-value guard
// it returns notConstructedErr, or ErrDefaultConstructorGuard when nil is passed.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}
	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}
	return notConstructedErr
}
