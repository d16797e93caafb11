package errs

import "errors"

// kinds maps each sentinel to its stable kind name. Order matters: the first
// match wins, so the more specific kinds come first.
var kinds = []struct {
	err  error
	name string
}{
	{ErrInternal, "Internal"},
	{ErrAlreadyClaimed, "AlreadyClaimed"},
	{ErrCancellationWindowClosed, "CancellationWindowClosed"},
	{ErrInvalidTransition, "InvalidTransition"},
	{ErrUnauthorized, "Unauthorized"},
	{ErrEmptyCart, "EmptyCart"},
	{ErrNotACustomer, "NotACustomer"},
	{ErrItemUnavailable, "ItemUnavailable"},
	{ErrOrderNotDeliverable, "OrderNotDeliverable"},
	{ErrInvalidRating, "InvalidRating"},
	{ErrChatNotAvailable, "ChatNotAvailable"},
	{ErrPaymentDeclined, "PaymentDeclined"},
	{ErrObjectNotFound, "NotFound"},
	{ErrValueIsRequired, "ValueIsRequired"},
	{ErrValueIsOutOfRange, "ValueIsOutOfRange"},
	{ErrValueIsInvalid, "ValueIsInvalid"},
}

// Kind returns the taxonomy name of err, "Internal" for unclassified errors
// and "" for nil.
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "Internal"
}

// Reason returns the short user-facing message for err. Classified errors
// keep their detailed message; anything else collapses to the internal
// sentinel so that implementation details do not leak to the UI.
func Reason(err error) string {
	switch Kind(err) {
	case "":
		return ""
	case "Internal":
		return ErrInternal.Error()
	default:
		return err.Error()
	}
}
