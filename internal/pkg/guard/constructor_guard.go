// Package guard provides ConstructorGuard, a marker that lets value objects,
// commands and queries detect whether they were built through their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object is a
// zero value and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded as a private field in types that must only be
// created through their constructor. Its zero value fails validation.
//
// Example usage:
//
//	var ErrGetHouseQueryIsNotConstructed = errors.New("GetHouseQuery must be created via NewGetHouseQuery")
//
//	type GetHouseQuery struct {
//	    houseID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func (q GetHouseQuery) Validate() error {
//	    return q.guard.Validate(ErrGetHouseQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed. Call it from the
// constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a guard created by NewConstructorGuard. For a zero
// value it returns validationError, or ErrDefaultConstructorGuard when
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
