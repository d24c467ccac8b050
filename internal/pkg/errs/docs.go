// Package errs provides standardized error types for the ordering application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package defines the error taxonomy the HTTP layer relies on:
//   - ObjectNotFoundError: referenced entity absent or not owned by the caller
//   - ValueIsInvalidError: business-rule violation or illegal state transition
//   - ValueIsRequiredError: missing mandatory value
//   - ValueIsOutOfRangeError: numeric value outside permitted bounds
//   - ConflictError: uniqueness violation surfaced from the store
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// All of these are recoverable operational errors surfaced verbatim to the
// caller with a stable classification; anything outside this taxonomy is an
// internal error and must not leak details to clients.
package errs
