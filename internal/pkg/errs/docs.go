// Package errs provides the standardized error types used across the retail
// back office. Every type follows one pattern:
//   - a sentinel error variable (e.g., ErrValueIsRequired)
//   - a struct type carrying the error details
//   - constructors with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Callers classify failures with errors.Is against the sentinels; the HTTP
// adapter maps them to status codes.
package errs
