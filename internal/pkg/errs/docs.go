// Package errs provides standardized error types for the shop application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers the error taxonomy of the order subsystem:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is invalid (bad enum value, malformed input)
//   - ObjectNotFoundError: an object cannot be found
//   - UnauthorizedError: a credential is missing or invalid where required
//   - StorageUnavailableError: the database could not complete an operation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// The HTTP adapter relies on this classification to choose response status
// codes, so new error conditions should reuse one of these types rather than
// introducing ad hoc errors.
package errs
