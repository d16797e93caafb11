package errs

import (
	"errors"
	"fmt"
)

// Business rule failures raised by the ordering workflow. All of them are
// recoverable: callers render them to the user as a short reason.
var (
	ErrInvalidTransition        = errors.New("invalid status transition")
	ErrUnauthorized             = errors.New("actor is not allowed to perform this action")
	ErrAlreadyClaimed           = errors.New("order already claimed")
	ErrCancellationWindowClosed = errors.New("cancellation window closed")
	ErrEmptyCart                = errors.New("cart is empty")
	ErrNotACustomer             = errors.New("only customers can check out")
	ErrItemUnavailable          = errors.New("item unavailable")
	ErrOrderNotDeliverable      = errors.New("order is not delivered")
	ErrInvalidRating            = errors.New("rating must be between 0 and 5")
	ErrChatNotAvailable         = errors.New("chat is not available for this order")
	ErrPaymentDeclined          = errors.New("payment declined")
	ErrInternal                 = errors.New("internal error")
)

// InvalidTransitionError carries the rejected status pair.
type InvalidTransitionError struct {
	From string
	To   string
}

func NewInvalidTransitionError(from, to fmt.Stringer) *InvalidTransitionError {
	return &InvalidTransitionError{From: from.String(), To: to.String()}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// AlreadyClaimedError is returned to every shipper that lost the claim race.
// Shipper names the winner.
type AlreadyClaimedError struct {
	OrderID string
	Shipper string
}

func NewAlreadyClaimedError(orderID, shipper string) *AlreadyClaimedError {
	return &AlreadyClaimedError{OrderID: orderID, Shipper: shipper}
}

func (e *AlreadyClaimedError) Error() string {
	return fmt.Sprintf("%s by %s", ErrAlreadyClaimed, e.Shipper)
}

func (e *AlreadyClaimedError) Unwrap() error {
	return ErrAlreadyClaimed
}

// UnauthorizedError names the actor and the action it attempted.
type UnauthorizedError struct {
	Actor  string
	Action string
}

func NewUnauthorizedError(actor, action string) *UnauthorizedError {
	return &UnauthorizedError{Actor: actor, Action: action}
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("%s: %s cannot %s", ErrUnauthorized, e.Actor, e.Action)
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// ItemUnavailableError identifies the food that cannot be ordered and why.
type ItemUnavailableError struct {
	Item   string
	Reason string
}

func NewItemUnavailableError(item, reason string) *ItemUnavailableError {
	return &ItemUnavailableError{Item: item, Reason: reason}
}

func (e *ItemUnavailableError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", ErrItemUnavailable, e.Item, e.Reason)
}

func (e *ItemUnavailableError) Unwrap() error {
	return ErrItemUnavailable
}

// InternalError marks a broken invariant reached through a programming bug.
// It is never used for business rule violations.
type InternalError struct {
	Cause error
}

func NewInternalError(cause error) *InternalError {
	return &InternalError{Cause: cause}
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("%s: %v", ErrInternal, e.Cause)
}

func (e *InternalError) Unwrap() []error {
	return []error{ErrInternal, e.Cause}
}
