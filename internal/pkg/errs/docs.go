// Package errs provides standardized error types for the food ordering application.
//
// Two families live here:
//   - Validation errors (ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError,
//     ObjectNotFoundError) used by constructors and repositories.
//   - The ordering workflow taxonomy (ErrInvalidTransition, ErrAlreadyClaimed,
//     ErrCancellationWindowClosed, ...) returned by command handlers.
//
// Each structured type unwraps to its sentinel, so callers classify errors with
// errors.Is. Kind and Reason turn any error into a stable kind name and a short
// user-facing message for the transport layer.
package errs
