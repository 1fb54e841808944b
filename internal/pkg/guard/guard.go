// Package guard detects value objects that were not created through their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in value objects so that a zero value can be told apart
// from one built by its constructor. Calendar values need this because several of them
// (Hour 0, Minute 0, Second 0) have a valid zero magnitude.
//
// Example usage:
//
//	type Month struct {
//	    value int
//	    guard guard.ConstructorGuard
//	}
//
//	func NewMonth(n int) (Month, error) {
//	    if n < 1 || n > 12 {
//	        return Month{}, errs.NewValueIsOutOfRangeError("month", n, 1, 12)
//	    }
//	    return Month{value: n, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (m Month) Validate() error {
//	    return m.guard.Validate(ErrMonthIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its owner as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the owner was not built by its constructor, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
