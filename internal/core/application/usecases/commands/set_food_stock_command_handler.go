package commands

import (
	"context"
	"fmt"
	"log/slog"

	"fooddelivery/internal/core/domain/model/food"
	"fooddelivery/internal/core/ports"
)

type SetFoodStockCommandHandler struct {
	deps   Deps
	logger *slog.Logger
}

func NewSetFoodStockCommandHandler(deps Deps) SetFoodStockCommandHandler {
	return SetFoodStockCommandHandler{deps: deps, logger: deps.logger("set_food_stock")}
}

func (h SetFoodStockCommandHandler) Handle(ctx context.Context, cmd SetFoodStockCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var name string
	err := h.deps.Foods.Update(ctx, cmd.FoodID(), func(f *food.FoodItem) error {
		if err := authorizeCatalog(cmd.Actor(), f.Restaurant()); err != nil {
			return err
		}
		f.SetInStock(cmd.InStock())
		name = f.Name()
		return nil
	})
	if err != nil {
		return err
	}

	state := "sold out"
	if cmd.InStock() {
		state = "back in stock"
	}
	h.logger.InfoContext(ctx, "Food stock changed", "food_id", cmd.FoodID().String(), "in_stock", cmd.InStock())
	h.deps.publish(ctx, h.logger, ports.Event{
		Type:    ports.CatalogChanged,
		Actor:   cmd.Actor().String(),
		Subject: name,
		Message: fmt.Sprintf("%s is %s", name, state),
	})
	return nil
}
