package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/guard"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// CheckoutCommand turns the customer's cart into a Placed order.
//
// Example:
//
//	cmd, _ := NewCheckoutCommand(alice, "leave at the door", order.CashOnDelivery)
//	placed, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrEmptyCart) {
//	    // nothing to check out
//	}
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	customer user.Actor
	note     string
	payment  order.PaymentMethod

	guard guard.ConstructorGuard
}

func NewCheckoutCommand(customer user.Actor, note string, payment order.PaymentMethod) (CheckoutCommand, error) {
	if err := errors.Join(customer.Validate(), payment.Validate()); err != nil {
		return CheckoutCommand{}, err
	}
	return CheckoutCommand{
		customer: customer,
		note:     note,
		payment:  payment,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

func (c CheckoutCommand) Customer() user.Actor {
	return c.customer
}

func (c CheckoutCommand) Note() string {
	return c.note
}

func (c CheckoutCommand) Payment() order.PaymentMethod {
	return c.payment
}
