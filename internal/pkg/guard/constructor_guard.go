// Package guard detects zero-value use of types that must be built through
// their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate on a zero-value guard
// when the caller supplies no error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded as a field in ledgers, commands and queries.
// Only NewConstructorGuard produces a guard that validates, so a struct
// literal or zero value of the owning type is rejected by its Validate method.
//
//	type Ledger struct {
//	    contents map[goods.Kind]float64
//	    guard    guard.ConstructorGuard
//	}
//
//	func (l *Ledger) Validate() error {
//	    return l.guard.Validate(ErrLedgerIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. Otherwise it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
