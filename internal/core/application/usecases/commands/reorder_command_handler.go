package commands

import (
	"context"
	"errors"
	"log/slog"

	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
)

type ReorderCommandHandler struct {
	deps   Deps
	logger *slog.Logger
}

func NewReorderCommandHandler(deps Deps) ReorderCommandHandler {
	return ReorderCommandHandler{deps: deps, logger: deps.logger("reorder")}
}

// Handle adds every item of the past order to the cart, or nothing at all when
// one of them can no longer be ordered.
func (h ReorderCommandHandler) Handle(ctx context.Context, cmd ReorderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := requireCustomer(cmd.Customer()); err != nil {
		return err
	}

	past, err := h.deps.Orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if past.Customer() != cmd.Customer().Username {
		return errs.NewUnauthorizedError(cmd.Customer().String(), "reorder another customer's order")
	}

	for _, it := range past.Items() {
		item, getErr := h.deps.Foods.Get(ctx, it.FoodID())
		if errors.Is(getErr, errs.ErrObjectNotFound) {
			return errs.NewItemUnavailableError(it.Name(), "no longer on the menu")
		}
		if getErr != nil {
			return getErr
		}
		restaurant, getErr := h.deps.Users.Get(ctx, item.Restaurant())
		if getErr != nil && !errors.Is(getErr, errs.ErrObjectNotFound) {
			return getErr
		}
		if err = services.EnsureAvailable(item, restaurant, it.Variation()); err != nil {
			return err
		}
	}

	err = h.deps.Carts.Update(ctx, cmd.Customer().Username, func(c *cart.Cart) error {
		for _, it := range past.Items() {
			if addErr := c.Add(it.FoodID(), it.Variation(), it.Quantity()); addErr != nil {
				return addErr
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Order copied into cart",
		"customer", cmd.Customer().Username, "order_id", cmd.OrderID().String(), "items", len(past.Items()))
	return nil
}
