package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/cart"
)

type RemoveFromCartCommandHandler struct {
	deps Deps
}

func NewRemoveFromCartCommandHandler(deps Deps) RemoveFromCartCommandHandler {
	return RemoveFromCartCommandHandler{deps: deps}
}

// Handle works even when the food has since left the catalog, so customers can
// clean stale lines out of their cart.
func (h RemoveFromCartCommandHandler) Handle(ctx context.Context, cmd RemoveFromCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := requireCustomer(cmd.Customer()); err != nil {
		return err
	}

	return h.deps.Carts.Update(ctx, cmd.Customer().Username, func(c *cart.Cart) error {
		return c.Remove(cmd.FoodID(), cmd.Variation(), cmd.Quantity())
	})
}
