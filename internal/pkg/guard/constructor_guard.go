// Package guard provides the ConstructorGuard defensive-construction helper.
//
// Domain objects in this service are only valid when created through their
// constructor functions. Embedding a ConstructorGuard lets a zero-value
// struct be detected at validation time, so commands, queries and aggregates
// can refuse to operate on objects that bypassed construction.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes
// a nil validation error for an object that was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether its owner was created through a constructor.
// The zero value reports "not constructed"; NewConstructorGuard reports
// "constructed". Embed it as a private field and delegate to Validate from
// the owner's own Validate method.
//
// Example:
//
//	type Carrier struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewCarrier(name string) (Carrier, error) {
//	    if name == "" {
//	        return Carrier{}, errors.New("name is required")
//	    }
//	    return Carrier{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c Carrier) Validate() error {
//	    return c.guard.Validate(ErrCarrierIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its owner as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owner was built through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
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
