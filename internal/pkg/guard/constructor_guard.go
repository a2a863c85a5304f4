// Package guard provides the constructor guard pattern used by domain
// value objects, entities, and commands throughout the application.
//
// A ConstructorGuard embedded in a struct distinguishes instances created
// through a designated constructor from zero values. Domain types call
// Validate in their own Validate methods so that improperly constructed
// instances fail fast instead of carrying unchecked state into business
// operations.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// was not constructed and no specific error was provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// The zero value is "not constructed" and fails Validate.
//
// Example:
//
//	type Weight struct {
//	    kg    float64
//	    guard guard.ConstructorGuard
//	}
//
//	func NewWeight(kg float64) (Weight, error) {
//	    if kg <= 0 {
//	        return Weight{}, errors.New("weight must be positive")
//	    }
//	    return Weight{kg: kg, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (w Weight) Validate() error {
//	    return w.guard.Validate(ErrWeightIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed. Call it from the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was created through its constructor.
// For zero-value guards it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
