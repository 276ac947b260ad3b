// Package errs provides the typed errors shared by the granary domain,
// application and adapter layers.
//
// Every error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsInvalid) used with errors.Is
//   - a struct carrying the offending parameter and an optional cause
//   - constructors with and without a cause
//   - Unwrap returning the sentinel, so callers classify errors without
//     depending on the concrete type
//
// Adapters map the sentinels onto transport codes: ErrValueIsInvalid,
// ErrValueIsOutOfRange and ErrValueIsRequired are caller mistakes,
// ErrObjectNotFound means the addressed object does not exist.
package errs
