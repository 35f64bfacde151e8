// Package errs provides standardized error types for the fleet application.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound) used as an unwrap target
//   - a struct type carrying the error details
//   - constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() for errors.Is support
//
// Domain packages build their own sentinel errors on top of these types, so
// callers can classify any failure with errors.Is without string matching.
package errs
