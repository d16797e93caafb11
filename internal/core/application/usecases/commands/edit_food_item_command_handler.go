package commands

import (
	"context"
	"fmt"
	"log/slog"

	"fooddelivery/internal/core/domain/model/food"
	"fooddelivery/internal/core/ports"
)

type EditFoodItemCommandHandler struct {
	deps   Deps
	logger *slog.Logger
}

func NewEditFoodItemCommandHandler(deps Deps) EditFoodItemCommandHandler {
	return EditFoodItemCommandHandler{deps: deps, logger: deps.logger("edit_food_item")}
}

// Handle applies the edit for the owning restaurant or a catalog manager and
// returns the stored item. Orders already placed are untouched.
func (h EditFoodItemCommandHandler) Handle(ctx context.Context, cmd EditFoodItemCommand) (*food.FoodItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var previous string
	var edited *food.FoodItem
	err := h.deps.Foods.Update(ctx, cmd.FoodID(), func(f *food.FoodItem) error {
		if err := authorizeCatalog(cmd.Actor(), f.Restaurant()); err != nil {
			return err
		}
		previous = f.Name()
		if err := f.Edit(cmd.Name(), cmd.Description(), cmd.Category(), cmd.Variations()); err != nil {
			return err
		}
		edited = f.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Food item edited",
		"food_id", cmd.FoodID().String(),
		"name", edited.Name(),
		"variations", len(edited.Variations()),
	)
	message := fmt.Sprintf("%s updated", edited.Name())
	if previous != edited.Name() {
		message = fmt.Sprintf("%s renamed to %s", previous, edited.Name())
	}
	h.deps.publish(ctx, h.logger, ports.Event{
		Type:    ports.CatalogChanged,
		Actor:   cmd.Actor().String(),
		Subject: edited.Name(),
		Message: message,
	})
	return edited, nil
}
