// Package errs provides standardized error types for the gift marketplace
// engine. It implements a consistent pattern for error creation, formatting,
// and unwrapping that is used throughout the application.
//
// The package covers two groups of error scenarios:
//
// Input and lookup failures:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or out of policy
//   - ValueIsOutOfRangeError: a numeric value is outside its bounds
//   - ObjectNotFoundError: an object cannot be found
//
// Lifecycle failures:
//   - InvalidTransitionError: an order transition is not legal from the current status
//   - AlreadyCollectedError: an order was already closed by a previous collection
//   - ConcurrentModificationError: an atomic conditional update lost a race
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrInvalidTransition)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can match the sentinel
//
// None of these conditions is process-fatal: callers report them to the
// initiating actor and leave order history untouched.
package errs
