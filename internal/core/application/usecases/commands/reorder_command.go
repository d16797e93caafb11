package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/guard"
)

var ErrReorderCommandIsNotConstructed = errors.New(
	"ReorderCommand must be created via NewReorderCommand constructor",
)

// ReorderCommand copies the items of one of the customer's past orders back
// into their cart.
type ReorderCommand struct { //nolint:recvcheck //using for validation
	customer user.Actor
	orderID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewReorderCommand(customer user.Actor, orderID kernel.UUID) (ReorderCommand, error) {
	if err := errors.Join(customer.Validate(), orderID.Validate()); err != nil {
		return ReorderCommand{}, err
	}
	return ReorderCommand{customer: customer, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c ReorderCommand) Validate() error {
	return c.guard.Validate(ErrReorderCommandIsNotConstructed)
}

func (c ReorderCommand) Customer() user.Actor {
	return c.customer
}

func (c ReorderCommand) OrderID() kernel.UUID {
	return c.orderID
}
