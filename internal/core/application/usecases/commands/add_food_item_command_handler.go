package commands

import (
	"context"
	"fmt"
	"log/slog"

	"fooddelivery/internal/core/domain/model/food"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// AddFoodItemCommandHandler creates catalog entries. The owning restaurant must
// be a registered Restaurant user.
type AddFoodItemCommandHandler struct {
	deps   Deps
	logger *slog.Logger
}

func NewAddFoodItemCommandHandler(deps Deps) AddFoodItemCommandHandler {
	return AddFoodItemCommandHandler{deps: deps, logger: deps.logger("add_food_item")}
}

// Handle stores the new item and returns it.
func (h AddFoodItemCommandHandler) Handle(ctx context.Context, cmd AddFoodItemCommand) (*food.FoodItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := authorizeCatalog(cmd.Actor(), cmd.Restaurant()); err != nil {
		return nil, err
	}

	owner, err := h.deps.Users.Get(ctx, cmd.Restaurant())
	if err != nil {
		return nil, err
	}
	if owner.Role() != user.Restaurant {
		return nil, errs.NewValueIsInvalidErrorWithCause("restaurant",
			fmt.Errorf("%s is a %s, not a restaurant", owner.Username(), owner.Role()))
	}

	item, err := food.NewFoodItem(kernel.NewUUID(), cmd.Name(), cmd.Description(), cmd.Price(),
		cmd.Category(), cmd.Restaurant())
	if err != nil {
		return nil, err
	}
	for _, v := range cmd.Variations() {
		if err = item.AddVariation(v.Name, v.Delta); err != nil {
			return nil, err
		}
	}

	if err = h.deps.Foods.Add(ctx, item); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Food item added",
		"food_id", item.ID().String(), "restaurant", item.Restaurant(), "price", item.Price().String())
	h.deps.publish(ctx, h.logger, ports.Event{
		Type:    ports.CatalogChanged,
		Actor:   cmd.Actor().String(),
		Subject: item.Name(),
		Message: fmt.Sprintf("%s added to %s at %s", item.Name(), item.Restaurant(), item.Price()),
	})
	return item, nil
}
