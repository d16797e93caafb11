package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
)

// PaymentGateway charges online orders synchronously. Charge returns the
// gateway reference on success and errs.ErrPaymentDeclined when the charge is
// refused. Refund reverses a charge by that reference; checkout uses it when
// the order cannot be stored after the customer was charged.
type PaymentGateway interface {
	Charge(ctx context.Context, orderID kernel.UUID, customer string, amount kernel.Money) (string, error)
	Refund(ctx context.Context, reference string) error
}
