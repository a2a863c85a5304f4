// Package errs provides standardized error types for the freight application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for common failure scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsOutOfRangeError: a value lies outside its allowed bounds
//   - ObjectNotFoundError: an object cannot be found
//   - NotAuthorizedError: the acting party may not perform the operation
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct type carrying error details
//   - constructor functions with and without a cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Domain packages add their own typed errors (status conflicts, capacity
// violations) following this pattern rather than importing it wholesale,
// keeping domain vocabulary inside the domain.
package errs
