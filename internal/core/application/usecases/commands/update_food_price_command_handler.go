package commands

import (
	"context"
	"fmt"
	"log/slog"

	"fooddelivery/internal/core/domain/model/food"
	"fooddelivery/internal/core/ports"
)

type UpdateFoodPriceCommandHandler struct {
	deps   Deps
	logger *slog.Logger
}

func NewUpdateFoodPriceCommandHandler(deps Deps) UpdateFoodPriceCommandHandler {
	return UpdateFoodPriceCommandHandler{deps: deps, logger: deps.logger("update_food_price")}
}

func (h UpdateFoodPriceCommandHandler) Handle(ctx context.Context, cmd UpdateFoodPriceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var name string
	err := h.deps.Foods.Update(ctx, cmd.FoodID(), func(f *food.FoodItem) error {
		if err := authorizeCatalog(cmd.Actor(), f.Restaurant()); err != nil {
			return err
		}
		name = f.Name()
		return f.ChangePrice(cmd.Price())
	})
	if err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Food price changed", "food_id", cmd.FoodID().String(), "price", cmd.Price().String())
	h.deps.publish(ctx, h.logger, ports.Event{
		Type:    ports.CatalogChanged,
		Actor:   cmd.Actor().String(),
		Subject: name,
		Message: fmt.Sprintf("%s now costs %s", name, cmd.Price()),
	})
	return nil
}
