package commands

import (
	"context"
	"fmt"
	"log/slog"

	"fooddelivery/internal/core/ports"
)

type RemoveFoodItemCommandHandler struct {
	deps   Deps
	logger *slog.Logger
}

func NewRemoveFoodItemCommandHandler(deps Deps) RemoveFoodItemCommandHandler {
	return RemoveFoodItemCommandHandler{deps: deps, logger: deps.logger("remove_food_item")}
}

// Handle deletes the item from the catalog. Carts still holding it fail at
// checkout with ItemUnavailable.
func (h RemoveFoodItemCommandHandler) Handle(ctx context.Context, cmd RemoveFoodItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := h.deps.Foods.Get(ctx, cmd.FoodID())
	if err != nil {
		return err
	}
	if err = authorizeCatalog(cmd.Actor(), item.Restaurant()); err != nil {
		return err
	}
	if err = h.deps.Foods.Remove(ctx, cmd.FoodID()); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Food item removed", "food_id", item.ID().String(), "restaurant", item.Restaurant())
	h.deps.publish(ctx, h.logger, ports.Event{
		Type:    ports.CatalogChanged,
		Actor:   cmd.Actor().String(),
		Subject: item.Name(),
		Message: fmt.Sprintf("%s removed from %s", item.Name(), item.Restaurant()),
	})
	return nil
}
