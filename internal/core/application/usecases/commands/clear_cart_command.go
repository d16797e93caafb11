package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/guard"
)

var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

type ClearCartCommand struct { //nolint:recvcheck //using for validation
	customer user.Actor

	guard guard.ConstructorGuard
}

func NewClearCartCommand(customer user.Actor) (ClearCartCommand, error) {
	if err := customer.Validate(); err != nil {
		return ClearCartCommand{}, err
	}
	return ClearCartCommand{customer: customer, guard: guard.NewConstructorGuard()}, nil
}

func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

func (c ClearCartCommand) Customer() user.Actor {
	return c.customer
}

// ClearCartCommandHandler empties the customer's cart.
type ClearCartCommandHandler struct {
	deps Deps
}

func NewClearCartCommandHandler(deps Deps) ClearCartCommandHandler {
	return ClearCartCommandHandler{deps: deps}
}

func (h ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := requireCustomer(cmd.Customer()); err != nil {
		return err
	}

	return h.deps.Carts.Update(ctx, cmd.Customer().Username, func(c *cart.Cart) error {
		c.Clear()
		return nil
	})
}
