package commands

import (
	"context"
	"errors"
	"log/slog"

	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
)

type AddToCartCommandHandler struct {
	deps   Deps
	logger *slog.Logger
}

func NewAddToCartCommandHandler(deps Deps) AddToCartCommandHandler {
	return AddToCartCommandHandler{deps: deps, logger: deps.logger("add_to_cart")}
}

// Handle checks the food is orderable right now and adds it to the cart.
func (h AddToCartCommandHandler) Handle(ctx context.Context, cmd AddToCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := requireCustomer(cmd.Customer()); err != nil {
		return err
	}

	item, err := h.deps.Foods.Get(ctx, cmd.FoodID())
	if err != nil {
		return err
	}
	restaurant, err := h.deps.Users.Get(ctx, item.Restaurant())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if err = services.EnsureAvailable(item, restaurant, cmd.Variation()); err != nil {
		return err
	}

	err = h.deps.Carts.Update(ctx, cmd.Customer().Username, func(c *cart.Cart) error {
		return c.Add(cmd.FoodID(), cmd.Variation(), cmd.Quantity())
	})
	if err != nil {
		return err
	}

	h.logger.DebugContext(ctx, "Added to cart",
		"customer", cmd.Customer().Username, "food_id", cmd.FoodID().String(), "quantity", cmd.Quantity())
	return nil
}
